package address

import "strings"

// Marker characters of a localized address
const (
	ProvinceMarker = "省"
	CityMarker     = "市"
	DistrictMarker = "区"
)

// DefaultKey is the region key used when an address cannot be parsed
const DefaultKey = "广东/深圳/南山"

// UnknownAddress is what FormatAddress returns when every part is empty
const UnknownAddress = "未知地址"

// Segments are the three parts of a parsed address
type Segments struct {
	Province string
	City     string
	District string
}

// Key joins the segments into a "Province/City/District" directory key
func (s Segments) Key() string {
	return s.Province + "/" + s.City + "/" + s.District
}

// Normalizer turns "广东省 深圳市 南山区" into "广东/深圳/南山"
type Normalizer struct {
	// Default is returned for addresses missing any marker
	Default string
}

// NewNormalizer creates a normalizer with the given fallback key
// An empty defaultKey selects DefaultKey
func NewNormalizer(defaultKey string) *Normalizer {
	if defaultKey == "" {
		defaultKey = DefaultKey
	}
	return &Normalizer{Default: defaultKey}
}

// Normalize returns the directory key for addr, or the default key
func (n *Normalizer) Normalize(addr string) string {
	seg, ok := Parse(addr)
	if !ok {
		return n.Default
	}
	return seg.Key()
}

// Parse splits addr at the province, city and district markers
//
// Each marker is located independently by its first occurrence; their order
// is not checked. The city and district segments start after the first space
// at or after the preceding marker, or at the start of addr when there is no
// such space. A segment whose end lies before its start runs to the end of addr.
func Parse(addr string) (Segments, bool) {
	provincePos := strings.Index(addr, ProvinceMarker)
	cityPos := strings.Index(addr, CityMarker)
	districtPos := strings.Index(addr, DistrictMarker)
	if provincePos < 0 || cityPos < 0 || districtPos < 0 {
		return Segments{}, false
	}

	return Segments{
		Province: addr[:provincePos],
		City:     segment(addr, afterSpace(addr, provincePos), cityPos),
		District: segment(addr, afterSpace(addr, cityPos), districtPos),
	}, true
}

func afterSpace(addr string, from int) int {
	i := strings.Index(addr[from:], " ")
	if i < 0 {
		return 0
	}
	return from + i + 1
}

func segment(addr string, start, end int) string {
	if end < start {
		return addr[start:]
	}
	return addr[start:end]
}

// FormatAddress joins the non-empty parts with single spaces
func FormatAddress(province, city, district string) string {
	var parts []string
	for _, p := range []string{province, city, district} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return UnknownAddress
	}
	return strings.Join(parts, " ")
}
