package sheets

import "context"

// Probe fetches only the header and the first data row of a dataset
// the body stream is closed as soon as both are decoded, so large sheets
// cost one row of transfer plus whatever the server already buffered
func (c *Client) Probe(ctx context.Context, name string) (Sheet, error) {
	body, err := c.open(ctx, name)
	if err != nil {
		return Sheet{}, err
	}
	defer func() { _ = body.Close() }()

	sheet, skipped, err := decode(body, name, 1)
	if skipped > 0 {
		c.log.Warn().Str("dataset", name).Int("skipped", skipped).Msg("sheets malformed rows skipped")
	}
	return sheet, err
}
