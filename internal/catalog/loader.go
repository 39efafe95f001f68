package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mrlokans/phrasetrainer/internal/bundled"
	"github.com/mrlokans/phrasetrainer/internal/database"
	"github.com/mrlokans/phrasetrainer/internal/database/phrases"
	"github.com/mrlokans/phrasetrainer/internal/entities"
)

// Format names a catalog encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatSQLite Format = "sqlite"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrNotSequence       = errors.New("catalog is not a sequence of phrase records")
)

// document is the keyed form accepted for JSON and YAML; TOML always uses it
// as a [[phrases]] table array:
//
//	{"phrases": [...]}  /  phrases: [...]
type document struct {
	Phrases *[]entities.Phrase `json:"phrases" yaml:"phrases"`
}

// ParseFormat resolves a user supplied format name or file extension.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// DetectFormat infers the format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// LoadFile reads the catalog at path. An empty format is detected from the
// extension. A missing or unparseable source is an error; callers treat it
// as fatal at startup.
func LoadFile(path string, format Format) (*Catalog, error) {
	if path == "" {
		return nil, errors.New("catalog path is empty")
	}

	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat catalog %s: %w", path, err)
	}

	if format == FormatSQLite {
		return loadSQLite(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return c, nil
}

// LoadBundled parses the sample catalog compiled into the binary.
func LoadBundled() (*Catalog, error) {
	data, err := bundled.CatalogJSON()
	if err != nil {
		return nil, err
	}
	c, err := Parse(data, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled catalog: %w", err)
	}
	return c, nil
}

// Parse decodes catalog bytes in one of the text formats.
func Parse(data []byte, format Format) (*Catalog, error) {
	var (
		entries []entities.Phrase
		err     error
	)

	switch format {
	case FormatJSON:
		entries, err = parseJSON(data)
	case FormatYAML:
		entries, err = parseYAML(data)
	case FormatTOML:
		entries, err = parseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return New(entries), nil
}

func parseJSON(data []byte) ([]entities.Phrase, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrNotSequence
	}

	switch trimmed[0] {
	case '[':
		var entries []entities.Phrase
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return entries, nil
	case '{':
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if doc.Phrases == nil {
			return nil, ErrNotSequence
		}
		return *doc.Phrases, nil
	default:
		return nil, ErrNotSequence
	}
}

func parseYAML(data []byte) ([]entities.Phrase, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, ErrNotSequence
		}
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var entries []entities.Phrase
		if err := node.Decode(&entries); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return entries, nil
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		if doc.Phrases == nil {
			return nil, ErrNotSequence
		}
		return *doc.Phrases, nil
	default:
		return nil, ErrNotSequence
	}
}

func parseTOML(data []byte) ([]entities.Phrase, error) {
	var doc struct {
		Phrases []entities.Phrase `toml:"phrases"`
	}
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if !meta.IsDefined("phrases") {
		return nil, ErrNotSequence
	}
	return doc.Phrases, nil
}

func loadSQLite(path string) (*Catalog, error) {
	db, err := database.OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	if !db.HasCatalog() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotSequence)
	}

	entries, err := phrases.NewRepository(db.DB).List()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return New(entries), nil
}
