// Field generator tool - writes a synthetic encoded field raster as PNG.
//
// Usage: go run ./cmd/fieldgen -out field.png
package main

import (
	"flag"
	"image/png"
	"log/slog"
	"os"

	"github.com/pthm-cable/windtrails/field"
)

func main() {
	out := flag.String("out", "field.png", "Output PNG path")
	width := flag.Int("width", 720, "Grid width in pixels")
	height := flag.Int("height", 360, "Grid height in pixels")
	west := flag.Float64("west", -180, "Western edge (degrees longitude)")
	east := flag.Float64("east", 180, "Eastern edge (degrees longitude)")
	south := flag.Float64("south", -85, "Southern edge (degrees latitude)")
	north := flag.Float64("north", 85, "Northern edge (degrees latitude)")
	min := flag.Float64("min", -50, "Decode range minimum (m/s)")
	max := flag.Float64("max", 50, "Decode range maximum (m/s)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	bounds := field.Bounds{West: *west, East: *east, South: *south, North: *north}
	if !bounds.Valid() {
		slog.Error("invalid bounds", "west", *west, "east", *east, "south", *south, "north", *north)
		os.Exit(1)
	}
	if *min >= *max {
		slog.Error("decode range must satisfy min < max", "min", *min, "max", *max)
		os.Exit(1)
	}

	fld := field.Synthetic(*width, *height, bounds, field.DecodeRange{Min: *min, Max: *max})

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("failed to create output file", "path", *out, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, fld.ToImage()); err != nil {
		slog.Error("failed to encode PNG", "error", err)
		os.Exit(1)
	}
	slog.Info("wrote field raster",
		"path", *out,
		"width", *width,
		"height", *height,
		"range", []float64{*min, *max},
	)
}
