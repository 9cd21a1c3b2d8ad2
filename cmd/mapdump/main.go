// Package main generates a single map and prints it, fully revealed.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/samdwyer/dungeonmap/internal/gamedata"
	"github.com/samdwyer/dungeonmap/internal/mapdump"
	"github.com/samdwyer/dungeonmap/internal/world"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	width := flag.Int("width", world.DefaultWidth, "map width")
	height := flag.Int("height", world.DefaultHeight, "map height")
	colored := flag.Bool("color", false, "colour glyphs with the game palette")
	verbose := flag.Bool("v", false, "narrate generation on stderr")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", *seed)

	m := &world.Map{}
	if *verbose {
		m.Logger = log.New(os.Stderr, "map: ", 0)
	}
	m.Generate(context.Background(), *width, *height, rand.New(rand.NewSource(*seed)))
	mapdump.RevealAll(m)

	opts := mapdump.Options{Color: *colored}
	if *colored {
		opts.Palette = gamedata.MustLoadPalette()
	}
	if err := mapdump.Write(os.Stdout, m, opts); err != nil {
		log.Fatalf("Failed to write map: %v", err)
	}
}
