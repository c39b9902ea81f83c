package source

import (
	"context"
	"strings"

	"github.com/tsawler/labreport/model"
)

// Static is a Source over records held in memory. Listings are returned in slice order.
type Static struct {
	PatientRecords []model.Record
	TestRecords    []model.Record
	Details        map[int64]model.Record
}

// Patients implements Source.
func (s *Static) Patients(_ context.Context, search string) ([]model.Record, error) {
	return filter(s.PatientRecords, search, "name", "identification_number"), nil
}

// Tests implements Source.
func (s *Static) Tests(_ context.Context, search string) ([]model.Record, error) {
	return filter(s.TestRecords, search, "patient_name", "identification_number", "test_name"), nil
}

// TestDetail implements Source.
func (s *Static) TestDetail(_ context.Context, id int64) ([]model.Record, error) {
	if rec, ok := s.Details[id]; ok {
		return []model.Record{rec}, nil
	}
	return nil, nil
}

func filter(records []model.Record, search string, keys ...string) []model.Record {
	if search == "" {
		return records
	}
	var out []model.Record
	for _, rec := range records {
		for _, k := range keys {
			if v, _ := rec.Get(k); strings.Contains(v, search) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
