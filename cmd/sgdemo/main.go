// Command sgdemo demonstrates the sg rounded-rectangle image node.
//
// It packs a few generated images into a texture atlas, drives a set of
// image nodes through shape and texture updates, and reports boundary
// cache statistics. The packed atlas surface is written out as a PNG so
// the packing can be inspected.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/sg"
	"github.com/gogpu/sg/atlas"
)

func main() {
	var (
		atlasSize = flag.Int("atlas", 512, "atlas edge length in pixels")
		nodes     = flag.Int("nodes", 16, "number of image nodes")
		output    = flag.String("output", "atlas.png", "atlas output file")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		sg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	a := atlas.New(*atlasSize, *atlasSize)
	regions := packDemoImages(a)

	dirtyCount := 0
	for i := 0; i < *nodes; i++ {
		node := sg.NewImageNode()
		node.SetDirtyObserver(func(sg.DirtyState) { dirtyCount++ })

		if err := node.SetTexture(regions[i%len(regions)]); err != nil {
			log.Fatalf("set texture: %v", err)
		}

		shape := sg.Shape{
			Rect: sg.Rect{
				X: float64(i%4) * 110, Y: float64(i/4) * 60,
				Width: 100, Height: 50,
			},
			// A few distinct radii so the cache sees both hits and misses.
			Radius: float64(4 + i%3*4),
		}
		changed, err := node.SetShape(shape)
		if err != nil {
			log.Fatalf("set shape: %v", err)
		}
		node.SetSmooth(i%2 == 0)

		fmt.Printf("%s changed=%t\n", node.Description(), changed)
	}

	stats := sg.DefaultBoundaryCache().Stats()
	fmt.Printf("\nboundary cache: %d entries, %d hits, %d misses (%.0f%% hit rate)\n",
		stats.Len, stats.Hits, stats.Misses, stats.HitRate*100)
	fmt.Printf("atlas: %d regions, %.0f%% utilized\n", a.Len(), a.Utilization()*100)
	fmt.Printf("dirty signals: %d\n", dirtyCount)

	if err := savePNG(*output, a.Image()); err != nil {
		log.Fatalf("save atlas: %v", err)
	}
	log.Printf("Atlas saved to %s (%dx%d)", *output, *atlasSize, *atlasSize)
}

// packDemoImages fills the atlas with solid-color tiles of varying sizes.
func packDemoImages(a *atlas.Atlas) []*atlas.Region {
	colors := []color.RGBA{
		{R: 220, G: 80, B: 80, A: 255},
		{R: 80, G: 200, B: 120, A: 255},
		{R: 90, G: 120, B: 230, A: 255},
		{R: 240, G: 200, B: 60, A: 255},
	}

	var regions []*atlas.Region
	for i, c := range colors {
		tile := image.NewRGBA(image.Rect(0, 0, 64+i*16, 48+i*8))
		for y := tile.Rect.Min.Y; y < tile.Rect.Max.Y; y++ {
			for x := tile.Rect.Min.X; x < tile.Rect.Max.X; x++ {
				tile.SetRGBA(x, y, c)
			}
		}

		r, err := a.Add(tile)
		if err != nil {
			log.Fatalf("pack tile %d: %v", i, err)
		}
		regions = append(regions, r)
	}
	return regions
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
