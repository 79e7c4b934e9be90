package directory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// ErrEmptyDirectory is returned when a source yields no usable records
var ErrEmptyDirectory = errors.New("city directory is empty")

// Column layout of the upstream city table:
// index, city id, admin label, short city name, pinyin, lat, lon
const (
	colID     = 1
	colAdmin  = 2
	colCity   = 3
	colPinyin = 4
	colLat    = 5
	colLon    = 6
	numCols   = 7
)

// LoadFile reads a city CSV from disk
func LoadFile(path string) (*Directory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open city CSV: %w", err)
	}
	defer file.Close()

	return LoadCSV(file)
}

// LoadCSV reads a city table in the upstream CSV layout
//
// The first row is a header. Rows are skipped when they are short, carry
// unparsable or out-of-range coordinates, have no city name, or sit at (0,0).
// Surviving rows keep their file order.
func LoadCSV(r io.Reader) (*Directory, error) {
	records, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	return New(records), nil
}

// ParseCSV is LoadCSV without building the directory
func ParseCSV(r io.Reader) ([]models.CityRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read city CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDirectory
	}
	if len(rows[0]) < numCols {
		return nil, fmt.Errorf("unexpected city CSV header: want at least %d columns, got %d", numCols, len(rows[0]))
	}

	var records []models.CityRecord
	for _, row := range rows[1:] {
		rec, ok := parseRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDirectory
	}
	return records, nil
}

func parseRow(row []string) (models.CityRecord, bool) {
	if len(row) < numCols {
		return models.CityRecord{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(row[colLat]), 64)
	if err != nil {
		return models.CityRecord{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(row[colLon]), 64)
	if err != nil {
		return models.CityRecord{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return models.CityRecord{}, false
	}

	city := strings.TrimSpace(row[colCity])
	if city == "" || (lat == 0 && lon == 0) {
		return models.CityRecord{}, false
	}

	return models.CityRecord{
		ID:     strings.TrimSpace(row[colID]),
		Admin:  strings.TrimSpace(row[colAdmin]),
		City:   city,
		Pinyin: strings.TrimSpace(row[colPinyin]),
		Lat:    lat,
		Lon:    lon,
	}, true
}
