package resolver

import (
	"math"
	"strings"

	"github.com/evyataryagoni/cityweather/internal/directory"
	"github.com/evyataryagoni/cityweather/internal/models"
	geo "github.com/kellydunn/golang-geo"
)

// Resolver looks up coordinates in a read-only directory
// Safe for concurrent use
//
// A record matches when its field contains the query or the query contains
// the field. The scan runs in directory order and the first match wins, so
// "广东/深圳/南山" finds a record named "深圳" and "深" finds it too. The empty
// query is a substring of everything and therefore matches the first record.
type Resolver struct {
	dir *directory.Directory
}

// New creates a resolver over dir
func New(dir *directory.Directory) *Resolver {
	return &Resolver{dir: dir}
}

// NewDefault creates a resolver over the compiled-in directory
func NewDefault() *Resolver {
	return New(directory.Default())
}

// Directory returns the directory this resolver scans
func (r *Resolver) Directory() *directory.Directory {
	return r.dir
}

// FindByName matches query against each record's city name
func (r *Resolver) FindByName(query string) (models.Coordinates, bool) {
	rec, ok := r.find(query, func(c models.CityRecord) string { return c.City })
	if !ok {
		return models.Coordinates{}, false
	}
	return models.Coordinates{Lat: rec.Lat, Lon: rec.Lon}, true
}

// FindByAdmin matches query against each record's administrative label
func (r *Resolver) FindByAdmin(query string) (models.Coordinates, bool) {
	rec, ok := r.find(query, func(c models.CityRecord) string { return c.Admin })
	if !ok {
		return models.Coordinates{}, false
	}
	return models.Coordinates{Lat: rec.Lat, Lon: rec.Lon}, true
}

// RecordByName is FindByName returning the whole matching record
func (r *Resolver) RecordByName(query string) (models.CityRecord, bool) {
	return r.find(query, func(c models.CityRecord) string { return c.City })
}

// RecordByAdmin is FindByAdmin returning the whole matching record
func (r *Resolver) RecordByAdmin(query string) (models.CityRecord, bool) {
	return r.find(query, func(c models.CityRecord) string { return c.Admin })
}

func (r *Resolver) find(query string, field func(models.CityRecord) string) (models.CityRecord, bool) {
	var (
		match models.CityRecord
		found bool
	)
	r.dir.Each(func(_ int, rec models.CityRecord) bool {
		if matches(field(rec), query) {
			match, found = rec, true
			return false
		}
		return true
	})
	return match, found
}

func matches(field, query string) bool {
	return strings.Contains(field, query) || strings.Contains(query, field)
}

// Nearest returns the record closest to (lat, lon) by great-circle distance
// Ties go to the earlier record. Returns false for an empty directory.
func (r *Resolver) Nearest(lat, lon float64) (models.CityRecord, float64, bool) {
	origin := geo.NewPoint(lat, lon)

	var (
		best   models.CityRecord
		bestKm = math.Inf(1)
		found  bool
	)
	r.dir.Each(func(_ int, rec models.CityRecord) bool {
		km := origin.GreatCircleDistance(geo.NewPoint(rec.Lat, rec.Lon))
		if km < bestKm {
			best, bestKm, found = rec, km, true
		}
		return true
	})
	if !found {
		return models.CityRecord{}, 0, false
	}
	return best, bestKm, true
}

var defaultResolver = NewDefault()

// FindCityByName looks up query by city name in the compiled-in directory
func FindCityByName(query string) (found bool, lat, lon float64) {
	c, ok := defaultResolver.FindByName(query)
	return ok, c.Lat, c.Lon
}

// FindCityByAdmin looks up query by administrative label in the compiled-in directory
func FindCityByAdmin(query string) (found bool, lat, lon float64) {
	c, ok := defaultResolver.FindByAdmin(query)
	return ok, c.Lat, c.Lon
}
