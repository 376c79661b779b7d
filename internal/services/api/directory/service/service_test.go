package service

import (
	"context"
	"testing"

	"griddesk/internal/core/hierarchy"
	perr "griddesk/internal/platform/errors"
	"griddesk/internal/services/api/directory/domain"
	ds "griddesk/internal/services/datasets/domain"
)

type fakeReader struct {
	offices []ds.OfficeRow
	err     error
}

func (f *fakeReader) Pending(context.Context) ([]ds.PendingApplication, error)   { return nil, nil }
func (f *fakeReader) Consumers(context.Context) ([]ds.ConsumerBucket, error)     { return nil, nil }
func (f *fakeReader) Dockets(context.Context) ([]ds.Docket, error)               { return nil, nil }
func (f *fakeReader) Collections(context.Context) ([]ds.CollectionTxn, error)    { return nil, nil }
func (f *fakeReader) Performance(context.Context) ([]ds.PerformanceMetric, error) { return nil, nil }
func (f *fakeReader) Offices(context.Context) ([]ds.OfficeRow, error)            { return f.offices, f.err }

func newSvc() *Svc {
	return New(&fakeReader{offices: []ds.OfficeRow{
		{Name: "D-Hisar", Codes: hierarchy.Codes{Division: "D23"}},
		// one name row can carry codes at several levels
		{Name: "CCC-Ramgarh", Codes: hierarchy.Codes{Division: "D23X", CCC: "6613001"}},
	}})
}

func TestResolve_LooksUpAndStrips(t *testing.T) {
	t.Parallel()

	s := newSvc()
	got, err := s.Resolve(context.Background(), domain.ResolveInput{Code: "6613001"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Name != "Ramgarh" {
		t.Fatalf("name=%q want Ramgarh", got.Name)
	}
}

func TestResolve_UnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	s := newSvc()
	got, err := s.Resolve(context.Background(), domain.ResolveInput{Code: "Z99"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Name != "Z99" {
		t.Fatalf("name=%q want raw code fallback", got.Name)
	}
}

func TestHeader_ComposesLabel(t *testing.T) {
	t.Parallel()

	s := newSvc()
	got, err := s.Header(context.Background(), domain.HeaderInput{Code: "D23", Role: "DIVISION"})
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	if got.Label != "Hisar Division" {
		t.Fatalf("label=%q want Hisar Division", got.Label)
	}
}

func TestHeader_BadRole(t *testing.T) {
	t.Parallel()

	s := newSvc()
	_, err := s.Header(context.Background(), domain.HeaderInput{Code: "D23", Role: "MANAGER"})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("code=%v want invalid argument", perr.CodeOf(err))
	}
}
