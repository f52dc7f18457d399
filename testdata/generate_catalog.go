// Catalog fixture generator for the CLI and example tests.
//
//	go run ./testdata/generate_catalog.go > testdata/catalog.json
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/colour"
)

const size = 60

func main() {
	records := make([]catalog.Record, 0, size)
	for i := range size {
		hue := float64((i*47 + (i*i)%13) % 360)
		sat := float64(20 + (i*31)%80)
		light := float64(15 + (i*17)%70)
		if i%10 == 0 {
			sat = 0 // greys exercise golden-angle placement
		}

		r := catalog.Record{
			URL:   fmt.Sprintf("https://www.youtube.com/watch?v=vid%04d", i),
			Title: fmt.Sprintf("Artist %d - Song %d", i%12, i),
			Color: colour.HSLToRGB(hue, sat, light).Hex(),
			Extra: map[string]json.RawMessage{"year": json.RawMessage(fmt.Sprint(1990 + i%30))},
		}
		if i%3 == 0 {
			r.HexPick = colour.HSLToRGB(hue+10, sat, light).Hex()
		}
		if i%4 == 0 {
			r.HexPickHome = colour.HSLToRGB(hue, min(sat+20, 100), light).Hex()
		}
		if i%17 == 5 {
			r.Color = "#abc" // malformed colours are skipped downstream
		}
		records = append(records, r)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding catalog: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
