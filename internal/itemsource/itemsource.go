// Package itemsource reads the item list a host offers for selection.
//
// Structured formats (YAML, JSON, TOML) hold a list of tables, either at the
// top level or under an "items" key. The lines format turns every non-empty
// line into an item whose key is derived from the text.
package itemsource

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"multiselect/internal/domain"
	"multiselect/internal/ui/logic"
)

var (
	// ErrUnsupportedFormat is returned for an unknown format name
	ErrUnsupportedFormat = errors.New("unsupported item format")
	// ErrNoItems is returned when a source holds no items
	ErrNoItems = errors.New("no items")
)

// Format names an item file encoding
type Format string

const (
	FormatAuto  Format = "auto"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTOML  Format = "toml"
	FormatLines Format = "lines"
)

// Stdin is the path that makes LoadFile read standard input
const Stdin = "-"

// ParseFormat validates a format name. The empty name means auto.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatAuto, nil
	case "yml":
		return FormatYAML, nil
	case FormatAuto, FormatYAML, FormatJSON, FormatTOML, FormatLines:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// DetectFormat picks a format from the file extension. Unknown extensions
// are read as lines.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatLines
	}
}

// sniffFormat guesses the format of unnamed input such as stdin
func sniffFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[[")):
		return FormatTOML
	case bytes.HasPrefix(trimmed, []byte("[")), bytes.HasPrefix(trimmed, []byte("{")):
		return FormatJSON
	case bytes.HasPrefix(trimmed, []byte("---")), bytes.HasPrefix(trimmed, []byte("- ")):
		return FormatYAML
	default:
		return FormatLines
	}
}

// LoadFile reads items from path, or from stdin when path is "-"
func LoadFile(path string, format Format, fields domain.Fields) ([]domain.Item, error) {
	if path == Stdin {
		return Load(os.Stdin, format, fields)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open item file: %w", err)
	}
	defer f.Close()

	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}
	items, err := Load(f, format, fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Load reads items from r. FormatAuto inspects the content.
func Load(r io.Reader, format Format, fields domain.Fields) ([]domain.Item, error) {
	fields = fields.WithDefaults()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	if format == FormatAuto || format == "" {
		format = sniffFormat(data)
	}

	var items []domain.Item
	switch format {
	case FormatLines:
		items, err = parseLines(data, fields)
	case FormatYAML, FormatJSON, FormatTOML:
		var doc any
		doc, err = decode(data, format)
		if err == nil {
			items, err = fromDocument(doc, fields)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

func decode(data []byte, format Format) (any, error) {
	var doc any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s items: %w", format, err)
	}
	return doc, nil
}

// fromDocument extracts the item list from a decoded document
func fromDocument(doc any, fields domain.Fields) ([]domain.Item, error) {
	var list []any
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		list = v
	case map[string]any:
		inner, ok := v["items"]
		if !ok {
			return nil, errors.New(`expected a list of items or an "items" key`)
		}
		l, ok := inner.([]any)
		if !ok {
			return nil, fmt.Errorf(`"items" must be a list, got %T`, inner)
		}
		list = l
	default:
		return nil, fmt.Errorf("expected a list of items, got %T", doc)
	}

	items := make([]domain.Item, 0, len(list))
	for i, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("item %d: expected a table, got %T", i+1, entry)
		}
		item := make(domain.Item, len(m))
		for k, val := range m {
			item[k] = normalize(val)
		}
		if fields.Key(item) == nil {
			return nil, fmt.Errorf("item %d: missing %q field", i+1, fields.UniqueKey)
		}
		items = append(items, item)
	}
	return items, nil
}

// normalize maps the numeric types produced by the different decoders onto
// int64, or float64 for non-integral values, so keys compare equal no
// matter which format they came from
func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n)
		}
		return float64(n)
	case float32:
		return normalize(float64(n))
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n)
		}
		return n
	default:
		return v
	}
}

// parseLines turns each non-empty line into an item. Lines that produce an
// already seen key are dropped.
func parseLines(data []byte, fields domain.Fields) ([]domain.Item, error) {
	var items []domain.Item
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key := logic.NewItemKey(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, domain.Item{
			fields.UniqueKey:  key,
			fields.DisplayKey: line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return items, nil
}

// ResolveKeys maps textual keys, as given on a command line, onto the keys of
// items. Names matching no item are kept as strings.
func ResolveKeys(items []domain.Item, fields domain.Fields, names []string) []domain.Key {
	fields = fields.WithDefaults()
	keys := make([]domain.Key, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var key domain.Key = name
		for _, item := range items {
			k := fields.Key(item)
			if domain.KeyString(k) == name {
				key = k
				break
			}
		}
		if !logic.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	return keys
}
