// SPDX-License-Identifier: MIT

package cable

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog document.
type File struct {
	Cables []Spec `json:"cables" yaml:"cables"`
}

// Format names accepted by DecodeSpecs.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DecodeSpecs parses a catalog document in the given format.
func DecodeSpecs(data []byte, format string) ([]Spec, error) {
	var f File
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("cable: decode json catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("cable: decode yaml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return f.Cables, nil
}

// FormatOf maps a file extension to a catalog format.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// LoadCatalogFile reads a JSON or YAML catalog and derives every type at
// lineFrequencyHz.
func LoadCatalogFile(path string, lineFrequencyHz float64) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cable: read catalog: %w", err)
	}
	specs, err := DecodeSpecs(data, format)
	if err != nil {
		return nil, err
	}

	return BuildCatalog(specs, lineFrequencyHz)
}
