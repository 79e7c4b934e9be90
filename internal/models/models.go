package models

import "time"

// CityRecord is one entry of the city directory
// ID and Pinyin are carried from the source table but never used for matching
type CityRecord struct {
	ID     string  `json:"id,omitempty"`
	City   string  `json:"city"`   // Short display name, e.g. 深圳
	Admin  string  `json:"admin"`  // Administrative label, e.g. 广东/深圳
	Pinyin string  `json:"pinyin,omitempty"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// Coordinates is a signed latitude/longitude pair in degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location is the result of resolving a client IP to an address
type Location struct {
	IP        string    `json:"ip,omitempty"`
	Province  string    `json:"province"`
	City      string    `json:"city"`
	District  string    `json:"district"`
	Address   string    `json:"address"` // "Province City District", space separated
	Provider  string    `json:"provider"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Weather is the current weather for a resolved city
type Weather struct {
	City        string      `json:"city"`
	Temperature string      `json:"temperature"` // Rendered with unit, e.g. "26°C"
	Text        string      `json:"text"`
	Valid       bool        `json:"valid"`
	Key         string      `json:"key,omitempty"` // Normalized region key used for the lookup
	Coordinates Coordinates `json:"coordinates"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// DisplayString renders the weather the way the device shows it
// Invalid weather shows its status text only
func (w Weather) DisplayString() string {
	if !w.Valid {
		return w.Text
	}
	return w.Temperature + " " + w.Text
}

// CityMatch is returned by the city lookup endpoints
type CityMatch struct {
	Query       string      `json:"query"`
	Coordinates Coordinates `json:"coordinates"`
}

// NearestCity is returned by the reverse lookup endpoint
type NearestCity struct {
	City       CityRecord `json:"city"`
	DistanceKm float64    `json:"distance_km"`
}

// NormalizedAddress is returned by the address normalization endpoint
type NormalizedAddress struct {
	Address string `json:"address"`
	Key     string `json:"key"`
	Parsed  bool   `json:"parsed"` // false when the default key was substituted
}

// DeviceStatus is the latest known state of a device
type DeviceStatus struct {
	DeviceID string    `json:"device_id"`
	Location *Location `json:"location,omitempty"`
	Weather  *Weather  `json:"weather,omitempty"`
	Display  string    `json:"display"`
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
}
