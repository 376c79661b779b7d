package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"io"

	perr "griddesk/internal/platform/errors"
)

// Sheet is one fetched dataset: a header row plus data rows
// rows are positional; use Col to find a field index by header name
type Sheet struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Col returns the index of the named header, -1 when absent
func (s Sheet) Col(name string) int {
	for i, h := range s.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Field returns row[col] guarding against ragged rows
// missing cells come back as the empty string
func (s Sheet) Field(row []string, name string) string {
	i := s.Col(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Fetch downloads and decodes the full dataset
func (c *Client) Fetch(ctx context.Context, name string) (Sheet, error) {
	body, err := c.open(ctx, name)
	if err != nil {
		return Sheet{}, err
	}
	defer func() { _ = body.Close() }()

	sheet, skipped, err := decode(body, name, -1)
	if skipped > 0 {
		c.log.Warn().Str("dataset", name).Int("skipped", skipped).Msg("sheets malformed rows skipped")
	}
	return sheet, err
}

// decode reads up to maxRows data rows (negative means all)
// ragged rows are tolerated, Field guards per cell; rows the csv parser
// rejects are skipped and counted rather than failing the whole sheet
func decode(r io.Reader, name string, maxRows int) (Sheet, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err == io.EOF {
		return Sheet{}, 0, perr.Upstreamf("sheets %s: empty response", name)
	}
	if err != nil {
		return Sheet{}, 0, perr.Wrapf(err, perr.ErrorCodeUpstream, "sheets %s: bad header row", name)
	}

	var rows [][]string
	skipped := 0
	for maxRows < 0 || len(rows) < maxRows {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			skipped++
			continue
		}
		if err != nil {
			return Sheet{}, skipped, perr.Wrapf(err, perr.ErrorCodeUpstream, "sheets %s: read data row", name)
		}
		rows = append(rows, rec)
	}
	return Sheet{Headers: headers, Rows: rows}, skipped, nil
}
