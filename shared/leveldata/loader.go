package leveldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Decode reads and validates a JSON level.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if f.Tilemap == nil {
		f.Tilemap = map[string]TileRecord{}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Encode writes the level as JSON. Map keys come out sorted, so equal
// levels encode to identical bytes.
func Encode(w io.Writer, f *File) error {
	out := *f
	if out.Tilemap == nil {
		out.Tilemap = map[string]TileRecord{}
	}
	if out.OffGrid == nil {
		out.OffGrid = []TileRecord{}
	}
	if err := json.NewEncoder(w).Encode(&out); err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	return nil
}

// Load reads a level from fsys, picking the format by extension. It takes
// an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, levelPath string) (*File, error) {
	if strings.EqualFold(path.Ext(levelPath), ".tmx") {
		return LoadTMX(fsys, levelPath)
	}
	r, err := fsys.Open(levelPath)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", levelPath, err)
	}
	defer r.Close()

	f, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	return f, nil
}

// Save writes the level to a file on disk.
func Save(filePath string, f *File) error {
	out, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create level %s: %w", filePath, err)
	}
	if err := Encode(out, f); err != nil {
		out.Close()
		return fmt.Errorf("save level %s: %w", filePath, err)
	}
	return out.Close()
}

// NextFreePath returns filePath if nothing exists there, otherwise the first
// free sibling of the form name0.ext, name1.ext, ...
func NextFreePath(filePath string) string {
	if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
		return filePath
	}
	ext := filepath.Ext(filePath)
	stem := strings.TrimSuffix(filePath, ext)
	for i := 0; ; i++ {
		candidate := stem + strconv.Itoa(i) + ext
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
	}
}

// ListLevels returns the level files in dir, sorted by name.
func ListLevels(fsys fs.FS, dir string) ([]string, error) {
	var names []string
	for _, pattern := range []string{dir + "/*.json", dir + "/*.tmx"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		names = append(names, matches...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(names)
	return names, nil
}
