package feature

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-featuregrid/pkg/icon"
)

var (
	// ErrEmptyList is returned when a document defines no features.
	ErrEmptyList = errors.New("feature: list is empty")
	// ErrInvalidDescriptor is returned for descriptors missing a title.
	ErrInvalidDescriptor = errors.New("feature: invalid descriptor")
)

type documentFile struct {
	Features []Descriptor `yaml:"features"`
}

// Load decodes a YAML document of the form
//
//	features:
//	  - title: Fast
//	    icon: bolt.svg
//	    description: Ships in <b>seconds</b>.
//
// Descriptor order follows the document. Titles and icon refs are trimmed;
// descriptions are kept verbatim apart from surrounding whitespace.
func Load(r io.Reader) (List, error) {
	if r == nil {
		return List{}, errors.New("feature: reader is required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return List{}, fmt.Errorf("feature: read document: %w", err)
	}
	return parse(data, "document")
}

// LoadFile reads a YAML document from disk.
func LoadFile(path string) (List, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return List{}, errors.New("feature: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, fmt.Errorf("feature: read %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (List, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return List{}, fmt.Errorf("feature: %s: %w", source, ErrEmptyList)
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return List{}, fmt.Errorf("feature: parse %s: %w", source, err)
	}
	if len(doc.Features) == 0 {
		return List{}, fmt.Errorf("feature: %s: %w", source, ErrEmptyList)
	}

	items := make([]Descriptor, 0, len(doc.Features))
	for i, raw := range doc.Features {
		d := Descriptor{
			Title:       strings.TrimSpace(raw.Title),
			Icon:        icon.Ref(raw.Icon.String()),
			Description: strings.TrimSpace(raw.Description),
		}
		if d.Title == "" {
			return List{}, fmt.Errorf("feature: %s: features[%d]: title is required: %w", source, i, ErrInvalidDescriptor)
		}
		items = append(items, d)
	}
	return NewList(items...), nil
}
