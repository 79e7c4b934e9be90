package resolver

import (
	"math"
	"testing"

	"github.com/evyataryagoni/cityweather/internal/directory"
	"github.com/evyataryagoni/cityweather/internal/models"
)

func testDirectory() *directory.Directory {
	return directory.New([]models.CityRecord{
		{City: "北京", Admin: "北京/北京", Lat: 39.9042, Lon: 116.4074},
		{City: "深圳", Admin: "广东/深圳/南山", Lat: 22.5431, Lon: 114.0579},
		{City: "深圳湾", Admin: "广东/深圳/深圳湾", Lat: 22.5000, Lon: 113.9500},
		{City: "广州", Admin: "广东/广州", Lat: 23.1291, Lon: 113.2644},
		{City: "州", Admin: "测试/州", Lat: 1, Lon: 1},
	})
}

// TestFindByName tests the symmetric containment predicate and first-match order
func TestFindByName(t *testing.T) {
	r := New(testDirectory())

	tests := []struct {
		name    string
		query   string
		found   bool
		wantLat float64
		wantLon float64
	}{
		{"exact", "北京", true, 39.9042, 116.4074},
		{"query more specific", "广东/深圳/南山", true, 22.5431, 114.0579},
		{"query more general", "深", true, 22.5431, 114.0579},
		{"first match beats longer match", "深圳湾", true, 22.5431, 114.0579},
		{"record substring of query", "广州市", true, 23.1291, 113.2644},
		{"empty query matches first record", "", true, 39.9042, 116.4074},
		{"no relation", "上海", false, 0, 0},
		{"latin", "Shenzhen", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.FindByName(tt.query)

			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if got.Lat != tt.wantLat || got.Lon != tt.wantLon {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.wantLat, tt.wantLon, got.Lat, got.Lon)
			}
		})
	}
}

// TestFindByAdmin tests matching against the administrative label
func TestFindByAdmin(t *testing.T) {
	r := New(testDirectory())

	tests := []struct {
		name    string
		query   string
		found   bool
		wantLat float64
	}{
		{"exact admin", "广东/深圳/南山", true, 22.5431},
		{"prefix of admin", "广东", true, 22.5431},
		{"admin inside query", "中国/广东/广州/天河", true, 23.1291},
		{"empty query matches first record", "", true, 39.9042},
		{"city name is not admin", "南山区", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.FindByAdmin(tt.query)

			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if got.Lat != tt.wantLat {
				t.Errorf("expected lat %v, got %v", tt.wantLat, got.Lat)
			}
		})
	}
}

// TestFind_Deterministic tests that repeated queries return identical results
func TestFind_Deterministic(t *testing.T) {
	r := New(testDirectory())

	first, ok1 := r.FindByName("广东/深圳/南山")
	second, ok2 := r.FindByName("广东/深圳/南山")

	if ok1 != ok2 || first != second {
		t.Errorf("expected identical results, got %v/%v and %v/%v", first, ok1, second, ok2)
	}
}

// TestFind_EmptyDirectory tests lookups against an empty directory
func TestFind_EmptyDirectory(t *testing.T) {
	r := New(directory.New(nil))

	if _, ok := r.FindByName(""); ok {
		t.Error("expected not found for empty directory")
	}
	if _, ok := r.FindByAdmin("广东"); ok {
		t.Error("expected not found for empty directory")
	}
	if _, _, ok := r.Nearest(22.5, 114.0); ok {
		t.Error("expected no nearest city for empty directory")
	}
}

// TestRecordByName tests that the whole record is returned
func TestRecordByName(t *testing.T) {
	r := New(testDirectory())

	rec, ok := r.RecordByName("北京市")
	if !ok {
		t.Fatal("expected match")
	}
	if rec.Admin != "北京/北京" {
		t.Errorf("expected admin '北京/北京', got '%s'", rec.Admin)
	}

	rec, ok = r.RecordByAdmin("广东/广州")
	if !ok {
		t.Fatal("expected match")
	}
	if rec.City != "广州" {
		t.Errorf("expected city '广州', got '%s'", rec.City)
	}
}

// TestNearest tests the reverse lookup by great-circle distance
func TestNearest(t *testing.T) {
	r := New(testDirectory())

	rec, km, ok := r.Nearest(22.54, 114.06)
	if !ok {
		t.Fatal("expected a nearest city")
	}
	if rec.City != "深圳" {
		t.Errorf("expected '深圳', got '%s'", rec.City)
	}
	if km < 0 || km > 5 {
		t.Errorf("expected distance under 5km, got %v", km)
	}

	rec, km, ok = r.Nearest(39.9042, 116.4074)
	if !ok || rec.City != "北京" {
		t.Fatalf("expected '北京', got '%s' (ok=%v)", rec.City, ok)
	}
	if math.Abs(km) > 1e-6 {
		t.Errorf("expected zero distance, got %v", km)
	}
}

// TestNearest_TieGoesToFirst tests that equally distant records resolve by order
func TestNearest_TieGoesToFirst(t *testing.T) {
	r := New(directory.New([]models.CityRecord{
		{City: "first", Lat: 10, Lon: 10},
		{City: "second", Lat: 10, Lon: 10},
	}))

	rec, _, ok := r.Nearest(0, 0)
	if !ok || rec.City != "first" {
		t.Errorf("expected 'first', got '%s'", rec.City)
	}
}

// TestFindCityByName_Default tests the package-level entry points
func TestFindCityByName_Default(t *testing.T) {
	found, lat, lon := FindCityByName("深圳")
	if !found {
		t.Fatal("expected 深圳 in the compiled-in directory")
	}
	if lat != 22.5431 || lon != 114.0579 {
		t.Errorf("expected (22.5431, 114.0579), got (%v, %v)", lat, lon)
	}

	found, lat, _ = FindCityByAdmin("广东/深圳/南山")
	if !found {
		t.Fatal("expected 广东/深圳/南山 in the compiled-in directory")
	}
	if lat != 22.5333 {
		t.Errorf("expected lat 22.5333, got %v", lat)
	}

	found, _, _ = FindCityByName("Atlantis")
	if found {
		t.Error("expected Atlantis to be missing")
	}

	first := directory.Default().At(0)
	found, lat, lon = FindCityByName("")
	if !found || lat != first.Lat || lon != first.Lon {
		t.Errorf("expected empty query to match the first record, got (%v, %v, %v)", found, lat, lon)
	}
}
