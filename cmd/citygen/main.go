package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/evyataryagoni/cityweather/internal/directory"
)

// This tool regenerates the compiled-in city table from the upstream CSV
// Usage: go run ./cmd/citygen -in data/cities.csv -out internal/directory/data.go
func main() {
	in := flag.String("in", "data/cities.csv", "city CSV: index,id,admin,city,pinyin,lat,lon")
	out := flag.String("out", "internal/directory/data.go", "generated Go file")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *in, err)
	}
	defer f.Close()

	records, err := directory.ParseCSV(f)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *in, err)
	}

	var buf bytes.Buffer
	if err := directory.WriteSource(&buf, *in, records); err != nil {
		log.Fatalf("Failed to generate source: %v", err)
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	dir := directory.New(records)
	fmt.Printf("✅ Wrote %s: %d cities in %d provinces\n", *out, dir.Count(), dir.Provinces())
}
