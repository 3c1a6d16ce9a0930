// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package profiledef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Parse unmarshals a YAML profile document. Every profile's
// operation definitions are compiled once to surface malformed
// entries at parse time rather than at resolution.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing profile document: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseJSONC strips JSONC comments and trailing commas from data,
// then unmarshals the result as a profile document.
func ParseJSONC(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("parsing profile document: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile parses the document at path, dispatching on extension:
// .yaml/.yml as YAML, .json/.jsonc as JSONC.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile document: %w", err)
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return Parse(data)
	case ".json", ".jsonc":
		return ParseJSONC(data)
	default:
		return nil, fmt.Errorf("unsupported profile document extension %q", filepath.Ext(path))
	}
}

// check compiles every operation definition, rejecting documents
// with malformed entries. A failed parse never returns a partial
// document.
func (doc *Document) check() error {
	for name, def := range doc.Profiles {
		if def == nil {
			return fmt.Errorf("profile %q is empty", name)
		}
		for i, opDef := range def.Operations {
			if _, err := opDef.Compile(); err != nil {
				return fmt.Errorf("profile %q operation %d: %w", name, i, err)
			}
		}
	}
	return nil
}
