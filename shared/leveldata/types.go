// Package leveldata provides the on-disk level formats: the JSON tile map
// written by the editor and TMX maps authored in Tiled.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed is returned for structurally invalid level data.
var ErrMalformed = errors.New("malformed level")

// File is the JSON level document.
type File struct {
	Tilemap  map[string]TileRecord `json:"tilemap"`
	TileSize int                   `json:"tile_size"`
	OffGrid  []TileRecord          `json:"offgrid"`
}

// TileRecord is one placed tile. Pos is in grid cells for tilemap entries
// and in pixels for offgrid entries.
type TileRecord struct {
	Type    string `json:"type"`
	Variant int    `json:"variant"`
	Pos     Point  `json:"pos"`
}

// Point is written as a two element JSON array.
type Point [2]int

func (p *Point) UnmarshalJSON(b []byte) error {
	var raw []float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: pos: %v", ErrMalformed, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: pos has %d components", ErrMalformed, len(raw))
	}
	// Editors may write fractional pixel positions for offgrid decor.
	p[0] = int(math.Floor(raw[0]))
	p[1] = int(math.Floor(raw[1]))
	return nil
}

// GridKey formats the tilemap key for a cell, e.g. "3;-2".
func GridKey(x, y int) string {
	return strconv.Itoa(x) + ";" + strconv.Itoa(y)
}

// ParseGridKey is the inverse of GridKey.
func ParseGridKey(key string) (int, int, error) {
	xs, ys, ok := strings.Cut(key, ";")
	if !ok {
		return 0, 0, fmt.Errorf("%w: key %q", ErrMalformed, key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: key %q", ErrMalformed, key)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: key %q", ErrMalformed, key)
	}
	return x, y, nil
}

// Validate checks the invariants the runtime relies on.
func (f *File) Validate() error {
	if f.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %d", ErrMalformed, f.TileSize)
	}
	for key, rec := range f.Tilemap {
		x, y, err := ParseGridKey(key)
		if err != nil {
			return err
		}
		if rec.Pos != (Point{x, y}) {
			return fmt.Errorf("%w: key %q holds tile at %v", ErrMalformed, key, rec.Pos)
		}
	}
	return nil
}
