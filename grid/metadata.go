package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedMetadata is returned by the strict metadata decoder.
// ParseMetadata itself never fails: malformed lines are silently skipped to
// stay compatible with hand-edited map files.
var ErrMalformedMetadata = errors.New("malformed metadata")

// Metadata is an ordered key/value document for map metadata files.
// Values are float64, string or []float64.
type Metadata struct {
	keys   []string
	values map[string]interface{}
}

func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]interface{})}
}

func (m *Metadata) Set(key string, value interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Metadata) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Metadata) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Metadata) Clone() *Metadata {
	out := NewMetadata()
	for _, k := range m.keys {
		v := m.values[k]
		if a, ok := v.([]float64); ok {
			c := make([]float64, len(a))
			copy(c, a)
			v = c
		}
		out.Set(k, v)
	}
	return out
}

// ParseMetadata decodes the key/value metadata format. One "key: value" pair
// per non-empty, non-'#' line; values wrapped in [...] become numeric arrays,
// values parsing as floats become numbers, anything else stays a string.
// Lines without ':' are dropped without error. Lines are read through
// bufio.Reader so an oversized line cannot abort the remaining document.
func ParseMetadata(b []byte) *Metadata {
	m := NewMetadata()
	br := bufio.NewReader(strings.NewReader(string(b)))
	for {
		raw, err := br.ReadString('\n')
		line := strings.TrimSpace(raw)
		if line != "" && !strings.HasPrefix(line, "#") {
			if key, rest, ok := strings.Cut(line, ":"); ok {
				m.Set(strings.TrimSpace(key), parseValue(strings.TrimSpace(rest)))
			}
		}
		if err != nil {
			return m
		}
	}
}

func parseValue(s string) interface{} {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := s[1 : len(s)-1]
		var arr []float64
		if strings.TrimSpace(inner) != "" {
			for _, e := range strings.Split(inner, ",") {
				arr = append(arr, safeFloat(strings.TrimSpace(e), 0))
			}
		}
		return arr
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// MarshalMetadata writes m in insertion order, arrays in flow style.
func MarshalMetadata(w io.Writer, m *Metadata) error {
	bw := bufio.NewWriter(w)
	for _, k := range m.keys {
		var err error
		switch v := m.values[k].(type) {
		case []float64:
			elems := make([]string, len(v))
			for i, f := range v {
				elems[i] = formatFloat(f)
			}
			_, err = fmt.Fprintf(bw, "%s: [%s]\n", k, strings.Join(elems, ", "))
		case float64:
			_, err = fmt.Fprintf(bw, "%s: %s\n", k, formatFloat(v))
		default:
			_, err = fmt.Fprintf(bw, "%s: %v\n", k, v)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func safeFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// MapMeta is the typed view of an occupancy grid metadata file.
type MapMeta struct {
	Image          string    `yaml:"image"`
	Resolution     float64   `yaml:"resolution"`
	Origin         []float64 `yaml:"origin"`
	Negate         int       `yaml:"negate"`
	OccupiedThresh float64   `yaml:"occupied_thresh"`
	FreeThresh     float64   `yaml:"free_thresh"`
}

// ParseMapMetaStrict decodes metadata as YAML, failing on malformed input.
func ParseMapMetaStrict(b []byte) (*MapMeta, error) {
	mm := &MapMeta{}
	if err := yaml.Unmarshal(b, mm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	return mm, nil
}

// MapMetaFrom extracts the recognized keys from a parsed document, applying
// the same lenient coercions as the parser.
func MapMetaFrom(m *Metadata) *MapMeta {
	mm := &MapMeta{}
	if v, ok := m.Get("image"); ok {
		switch s := v.(type) {
		case string:
			mm.Image = s
		case float64:
			mm.Image = formatFloat(s)
		}
	}
	mm.Resolution = floatValue(m, "resolution")
	if v, ok := m.Get("origin"); ok {
		if a, ok := v.([]float64); ok {
			mm.Origin = append([]float64(nil), a...)
		}
	}
	mm.Negate = int(floatValue(m, "negate"))
	mm.OccupiedThresh = floatValue(m, "occupied_thresh")
	mm.FreeThresh = floatValue(m, "free_thresh")
	return mm
}

// Metadata converts mm back to an ordered document.
func (mm *MapMeta) Metadata() *Metadata {
	m := NewMetadata()
	m.Set("image", mm.Image)
	m.Set("resolution", mm.Resolution)
	m.Set("origin", append([]float64(nil), mm.Origin...))
	m.Set("negate", float64(mm.Negate))
	m.Set("occupied_thresh", mm.OccupiedThresh)
	m.Set("free_thresh", mm.FreeThresh)
	return m
}

func floatValue(m *Metadata, key string) float64 {
	v, ok := m.Get(key)
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return f
}
