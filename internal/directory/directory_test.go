package directory

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evyataryagoni/cityweather/internal/models"
	"github.com/google/go-cmp/cmp"
)

// TestDefault_NonEmpty tests that the compiled-in table is loaded
func TestDefault_NonEmpty(t *testing.T) {
	dir := Default()

	if dir.Count() == 0 {
		t.Fatal("expected compiled-in directory to be non-empty")
	}
	if dir.Count() != len(cityData) {
		t.Errorf("expected %d records, got %d", len(cityData), dir.Count())
	}
	if Default() != dir {
		t.Error("expected Default to return the same directory on every call")
	}
}

// TestNew_CopiesInput tests that later changes to the caller's slice are not visible
func TestNew_CopiesInput(t *testing.T) {
	records := []models.CityRecord{
		{City: "深圳", Admin: "广东/深圳", Lat: 22.5431, Lon: 114.0579},
	}
	dir := New(records)

	records[0].City = "changed"

	if got := dir.At(0).City; got != "深圳" {
		t.Errorf("expected city '深圳', got '%s'", got)
	}
}

// TestRecords_ReturnsCopy tests that callers cannot mutate the directory
func TestRecords_ReturnsCopy(t *testing.T) {
	dir := New([]models.CityRecord{{City: "北京", Admin: "北京/北京"}})

	out := dir.Records()
	out[0].City = "changed"

	if dir.At(0).City != "北京" {
		t.Error("expected directory to be unaffected by changes to Records() output")
	}
}

// TestEach_StopsEarly tests iteration order and early exit
func TestEach_StopsEarly(t *testing.T) {
	dir := New([]models.CityRecord{{City: "a"}, {City: "b"}, {City: "c"}})

	var seen []string
	dir.Each(func(i int, r models.CityRecord) bool {
		seen = append(seen, r.City)
		return i < 1
	})

	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Errorf("unexpected iteration (-want +got):\n%s", diff)
	}
}

// TestProvinces tests counting of distinct leading admin segments
func TestProvinces(t *testing.T) {
	dir := New([]models.CityRecord{
		{City: "深圳", Admin: "广东/深圳"},
		{City: "广州", Admin: "广东/广州"},
		{City: "杭州", Admin: "浙江/杭州"},
		{City: "北京", Admin: "北京"},
	})

	if got := dir.Provinces(); got != 3 {
		t.Errorf("expected 3 provinces, got %d", got)
	}
}

const sampleCSV = `,城市ID,行政归属,城市简称,拼音,lat,lon
0,WX4FBXXFKE4F,北京/北京,北京,Beijing,39.9,116.4
1,,广东/深圳,深圳,Shenzhen,22.5431,114.0579
2,,bad/row,坏,Bad,not-a-number,114.0
3,,zero/row,零,Zero,0,0
4,,range/row,越界,Range,95.0,114.0
5,,empty/row,,Empty,22.0,114.0
6,,short/row
7,,浙江/杭州,杭州,Hangzhou,30.2741,120.1551`

// TestLoadCSV_FiltersRows tests that only valid rows survive, in file order
func TestLoadCSV_FiltersRows(t *testing.T) {
	dir, err := LoadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.CityRecord{
		{ID: "WX4FBXXFKE4F", Admin: "北京/北京", City: "北京", Pinyin: "Beijing", Lat: 39.9, Lon: 116.4},
		{Admin: "广东/深圳", City: "深圳", Pinyin: "Shenzhen", Lat: 22.5431, Lon: 114.0579},
		{Admin: "浙江/杭州", City: "杭州", Pinyin: "Hangzhou", Lat: 30.2741, Lon: 120.1551},
	}
	if diff := cmp.Diff(want, dir.Records()); diff != "" {
		t.Errorf("unexpected records (-want +got):\n%s", diff)
	}
}

// TestLoadCSV_Empty tests empty and header-only input
func TestLoadCSV_Empty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"header only", ",城市ID,行政归属,城市简称,拼音,lat,lon"},
		{"no valid rows", ",城市ID,行政归属,城市简称,拼音,lat,lon\n0,,a/b,,x,1,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.content))
			if !errors.Is(err, ErrEmptyDirectory) {
				t.Errorf("expected ErrEmptyDirectory, got %v", err)
			}
		})
	}
}

// TestLoadCSV_BadHeader tests that a narrow header is rejected
func TestLoadCSV_BadHeader(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("city,lat,lon\n深圳,22.5,114.0"))
	if err == nil {
		t.Fatal("expected error for narrow header, got nil")
	}
	if errors.Is(err, ErrEmptyDirectory) {
		t.Error("expected header error, got ErrEmptyDirectory")
	}
}

// TestLoadFile tests loading from disk and the missing file case
func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "cities.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	dir, err := LoadFile(csvPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.Count() != 3 {
		t.Errorf("expected 3 records, got %d", dir.Count())
	}

	if _, err := LoadFile(filepath.Join(tmpDir, "missing.csv")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

// TestWriteSource tests that generated source round-trips the records
func TestWriteSource(t *testing.T) {
	records := []models.CityRecord{
		{ID: "WX4FBXXFKE4F", Admin: "北京/北京", City: "北京", Pinyin: "Beijing", Lat: 39.9042, Lon: 116.4074},
		{Admin: "广东/深圳/南山", City: "南山", Pinyin: "Nanshan", Lat: 22.5333, Lon: 113.9304},
	}

	var buf bytes.Buffer
	if err := WriteSource(&buf, "cities.csv", records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src := buf.String()

	for _, want := range []string{
		"// Code generated by citygen from cities.csv. DO NOT EDIT.",
		"package directory",
		`{ID: "WX4FBXXFKE4F", Admin: "北京/北京", City: "北京", Pinyin: "Beijing", Lat: 39.904200, Lon: 116.407400},`,
		`{Admin: "广东/深圳/南山", City: "南山", Pinyin: "Nanshan", Lat: 22.533300, Lon: 113.930400},`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("expected generated source to contain %q\n%s", want, src)
		}
	}
}
