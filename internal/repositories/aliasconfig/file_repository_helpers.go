package aliasconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/q/internal/core/domain/alias"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type format int

const (
	formatTOML format = iota
	formatYAML
)

const defaultTOMLContent = `group = [
{ name = "show files", command = "ls -lh", help = "this is help info" }
]`

const defaultYAMLContent = `group:
  - name: show files
    command: ls -lh
    help: this is help info
`

const groupKey = "group"

// document is the top-level shape of the file: one array of alias records.
type document struct {
	Group []alias.Alias `toml:"group" yaml:"group"`
}

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatTOML
	}
}

func (f format) defaultContent() []byte {
	if f == formatYAML {
		return []byte(defaultYAMLContent)
	}
	return []byte(defaultTOMLContent)
}

// decode parses data into aliases. Keys outside the known shape are returned
// in unknown rather than failing the decode.
func (f format) decode(data []byte) (aliases []alias.Alias, unknown []string, err error) {
	if f == formatYAML {
		return decodeYAML(data)
	}
	return decodeTOML(data)
}

func decodeTOML(data []byte) ([]alias.Alias, []string, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid toml: %w", err)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	sort.Strings(unknown)
	return doc.Group, unknown, nil
}

func decodeYAML(data []byte) ([]alias.Alias, []string, error) {
	var doc document
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		// A file holding only comments or "---" has no document at all.
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return doc.Group, unknownYAMLKeys(raw), nil
}

// unknownYAMLKeys lists keys outside `group` and the alias record fields,
// in the dotted form the TOML decoder reports.
func unknownYAMLKeys(raw map[string]any) []string {
	known := map[string]bool{alias.FieldName: true, alias.FieldCommand: true, alias.FieldHelp: true}
	seen := map[string]bool{}
	var unknown []string
	add := func(key string) {
		if !seen[key] {
			seen[key] = true
			unknown = append(unknown, key)
		}
	}

	for key, value := range raw {
		if key != groupKey {
			add(key)
			continue
		}
		records, _ := value.([]any)
		for _, record := range records {
			fields, _ := record.(map[string]any)
			for field := range fields {
				if !known[field] {
					add(groupKey + "." + field)
				}
			}
		}
	}
	sort.Strings(unknown)
	return unknown
}
