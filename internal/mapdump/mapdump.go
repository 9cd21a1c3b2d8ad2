// Package mapdump writes a generated map as plain or coloured ASCII, for
// inspecting the generator outside the game.
package mapdump

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonmap/internal/gamedata"
	"github.com/samdwyer/dungeonmap/internal/world"
)

// Options controls how a map is written.
type Options struct {
	// Color wraps each glyph in the palette's terminal colour.
	Color bool
	// Palette supplies colours; required when Color is set.
	Palette *gamedata.Palette
}

var headerStyle = color.Style{color.FgWhite, color.OpBold}

// RevealAll marks every cell as seen so the whole map is drawn.
func RevealAll(m *world.Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if c, err := m.Cell(x, y); err == nil {
				c.Seen = true
			}
		}
	}
}

// Write dumps the map grid followed by a legend of every name on it.
// Cells that were never seen are written as blanks.
func Write(w io.Writer, m *world.Map, opts Options) error {
	bw := bufio.NewWriter(w)

	header := fmt.Sprintf("=== map %dx%d: %d cell types, %d doors, %d transports ===",
		m.Width, m.Height, len(m.CellTypes), len(m.Doors), len(m.Transports))
	if opts.Color {
		header = headerStyle.Sprint(header)
	}
	fmt.Fprintln(bw, header)

	legend := make(map[string]world.Sprite)
	names := mapset.New[string]()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sprite, err := m.Sprite(x, y)
			if err != nil {
				return err
			}
			if sprite == world.Blank {
				bw.WriteByte(' ')
				continue
			}

			name, err := m.Name(x, y)
			if err != nil {
				return err
			}
			if !names.Has(name) {
				names.Put(name)
				legend[name] = sprite
			}
			bw.WriteString(glyph(sprite, name, opts))
		}
		bw.WriteByte('\n')
	}

	sorted := make([]string, 0, names.Size())
	names.Each(func(name string) {
		sorted = append(sorted, name)
	})
	sort.Strings(sorted)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "--- legend ---")
	for _, name := range sorted {
		fmt.Fprintf(bw, "%s %s\n", glyph(legend[name], name, opts), name)
	}

	return bw.Flush()
}

func glyph(sprite world.Sprite, name string, opts Options) string {
	s := string(rune(sprite))
	if !opts.Color || opts.Palette == nil {
		return s
	}
	hex := opts.Palette.Hex(name)
	if hex == "" {
		return s
	}
	s = color.HEX(hex).Sprint(s)
	if opts.Palette.Bold(name) {
		s = color.OpBold.Sprint(s)
	}
	return s
}
