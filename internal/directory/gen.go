package directory

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// WriteSource renders records as the Go source of the compiled-in table
// source names the input file in the generated header
func WriteSource(w io.Writer, source string, records []models.CityRecord) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by citygen from %s. DO NOT EDIT.\n\n", source)
	buf.WriteString("package directory\n\n")
	buf.WriteString("import \"github.com/evyataryagoni/cityweather/internal/models\"\n\n")
	buf.WriteString("var cityData = []models.CityRecord{\n")
	for _, r := range records {
		buf.WriteString("\t{")
		if r.ID != "" {
			fmt.Fprintf(&buf, "ID: %s, ", strconv.Quote(r.ID))
		}
		fmt.Fprintf(&buf, "Admin: %s, City: %s, Pinyin: %s, Lat: %s, Lon: %s},\n",
			strconv.Quote(r.Admin),
			strconv.Quote(r.City),
			strconv.Quote(r.Pinyin),
			strconv.FormatFloat(r.Lat, 'f', 6, 64),
			strconv.FormatFloat(r.Lon, 'f', 6, 64),
		)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w", err)
	}

	_, err = w.Write(src)
	return err
}
