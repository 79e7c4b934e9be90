package directory

import (
	"sync"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// Directory is an ordered, read-only table of city records
// Record order is significant: lookups return the first match in this order
type Directory struct {
	records []models.CityRecord
}

var (
	defaultOnce sync.Once
	defaultDir  *Directory
)

// New builds a directory from the given records
// The input is copied, so the caller may reuse its slice
func New(records []models.CityRecord) *Directory {
	cp := make([]models.CityRecord, len(records))
	copy(cp, records)
	return &Directory{records: cp}
}

// Default returns the compiled-in directory
// It is built on first use and shared for the lifetime of the process
func Default() *Directory {
	defaultOnce.Do(func() {
		defaultDir = New(cityData)
	})
	return defaultDir
}

// Count returns the number of records
func (d *Directory) Count() int {
	return len(d.records)
}

// At returns the record at position i in directory order
func (d *Directory) At(i int) models.CityRecord {
	return d.records[i]
}

// Records returns a copy of all records in directory order
func (d *Directory) Records() []models.CityRecord {
	cp := make([]models.CityRecord, len(d.records))
	copy(cp, d.records)
	return cp
}

// Each calls fn for every record in order until fn returns false
func (d *Directory) Each(fn func(i int, r models.CityRecord) bool) {
	for i, r := range d.records {
		if !fn(i, r) {
			return
		}
	}
}

// Provinces returns the number of distinct leading admin segments
func (d *Directory) Provinces() int {
	seen := make(map[string]struct{})
	for _, r := range d.records {
		seen[provinceOf(r.Admin)] = struct{}{}
	}
	return len(seen)
}

func provinceOf(admin string) string {
	for i, c := range admin {
		if c == '/' {
			return admin[:i]
		}
	}
	return admin
}
