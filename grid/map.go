package grid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingInput is returned when a map directory lacks its .pgm or .yaml
// file.
var ErrMissingInput = errors.New("missing map input file")

// Map pairs an occupancy raster with its metadata document.
type Map struct {
	Raster *Raster
	Meta   *Metadata
}

// MapMeta returns the typed view of the metadata.
func (m *Map) MapMeta() *MapMeta {
	return MapMetaFrom(m.Meta)
}

// ReadMapDir loads the .pgm/.yaml pair found in dir.
func ReadMapDir(dir string) (*Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var pgmPath, yamlPath string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch strings.ToLower(filepath.Ext(name)) {
		case ".pgm":
			if pgmPath == "" {
				pgmPath = filepath.Join(dir, name)
			}
		case ".yaml":
			if yamlPath == "" {
				yamlPath = filepath.Join(dir, name)
			}
		}
	}
	if pgmPath == "" {
		return nil, fmt.Errorf("%w: no .pgm in %s", ErrMissingInput, dir)
	}
	if yamlPath == "" {
		return nil, fmt.Errorf("%w: no .yaml in %s", ErrMissingInput, dir)
	}

	f, err := os.Open(pgmPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	raster, err := ParsePGM(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pgmPath, err)
	}
	b, err := os.ReadFile(yamlPath)
	if err != nil {
		return nil, err
	}
	return &Map{Raster: raster, Meta: ParseMetadata(b)}, nil
}

// WriteMapDir stores the map as <name>.pgm and <name>.yaml under dir,
// rewriting the metadata image key to the new file name. An empty name
// defaults to the directory base name.
func (m *Map) WriteMapDir(dir, name string) error {
	if name == "" {
		name = filepath.Base(dir)
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "enhanced_map"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	pgmName := name + ".pgm"
	f, err := os.Create(filepath.Join(dir, pgmName))
	if err != nil {
		return err
	}
	if err := MarshalPGM(f, m.Raster); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	meta := m.Meta.Clone()
	meta.Set("image", pgmName)
	g, err := os.Create(filepath.Join(dir, name+".yaml"))
	if err != nil {
		return err
	}
	if err := MarshalMetadata(g, meta); err != nil {
		g.Close()
		return err
	}
	return g.Close()
}
