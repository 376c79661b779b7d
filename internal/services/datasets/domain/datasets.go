package domain

// Dataset names as published by the sheet provider
const (
	DatasetPending     = "pending"
	DatasetConsumers   = "consumers"
	DatasetDockets     = "dockets"
	DatasetCollections = "collections"
	DatasetPerformance = "performance"
	DatasetOffices     = "offices"
)

// Descriptor describes one dataset to the cache and sync layers
type Descriptor struct {
	Name string

	// DateField names the column compared by the staleness probe
	// empty means the probe falls back to the full row fingerprint
	DateField string
}

// Datasets lists every dataset the service knows about, in sweep order
var Datasets = []Descriptor{
	{Name: DatasetPending, DateField: "applied_date"},
	{Name: DatasetConsumers},
	{Name: DatasetDockets, DateField: "opened_date"},
	{Name: DatasetCollections, DateField: "txn_date"},
	{Name: DatasetPerformance},
	{Name: DatasetOffices},
}

// Describe returns the descriptor for name
// unknown names get a bare descriptor so callers stay total
func Describe(name string) Descriptor {
	for _, d := range Datasets {
		if d.Name == name {
			return d
		}
	}
	return Descriptor{Name: name}
}

// ProbeValue resolves the field the staleness probe compares byte for byte
func ProbeValue(d Descriptor, rec Record) string {
	if d.DateField != "" {
		return rec.Str(d.DateField)
	}
	return rec.Fingerprint()
}
