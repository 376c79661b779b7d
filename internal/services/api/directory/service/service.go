// Package service contains office directory workflows
package service

import (
	"context"

	coredir "griddesk/internal/core/directory"
	"griddesk/internal/core/hierarchy"
	perr "griddesk/internal/platform/errors"
	"griddesk/internal/services/api/directory/domain"
	ds "griddesk/internal/services/datasets/domain"
)

// Service defines the directory service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the directory service
type Svc struct {
	reader ds.ReaderPort
}

// New constructs a directory service over the dataset reader port
func New(reader ds.ReaderPort) *Svc {
	if reader == nil {
		panic("directory.Service requires a non nil ReaderPort")
	}
	return &Svc{reader: reader}
}

// build assembles the lookup from the offices dataset
// every non empty code on a row maps to that row's name
func (s *Svc) build(ctx context.Context) (*coredir.Directory, error) {
	rows, err := s.reader.Offices(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		for _, code := range []string{row.Codes.Zone, row.Codes.Region, row.Codes.Division, row.Codes.CCC} {
			if code != "" {
				names[code] = row.Name
			}
		}
	}
	return coredir.New(names), nil
}

// Resolve returns the cleaned display name for a code
func (s *Svc) Resolve(ctx context.Context, in domain.ResolveInput) (domain.ResolveOutput, error) {
	d, err := s.build(ctx)
	if err != nil {
		return domain.ResolveOutput{}, err
	}
	return domain.ResolveOutput{Code: in.Code, Name: d.Resolve(in.Code)}, nil
}

// Header composes the display header label for a code and role
func (s *Svc) Header(ctx context.Context, in domain.HeaderInput) (domain.HeaderOutput, error) {
	role, ok := hierarchy.ParseRole(in.Role)
	if !ok {
		return domain.HeaderOutput{}, perr.InvalidArgf("unknown role %q", in.Role)
	}
	d, err := s.build(ctx)
	if err != nil {
		return domain.HeaderOutput{}, err
	}
	return domain.HeaderOutput{Label: d.HeaderLabel(in.Code, role)}, nil
}
