// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseSnapshot reads and decodes an import file. The format is chosen by
// file extension: .yaml and .yml decode as YAML, everything else as JSON.
func ParseSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("error reading snapshot file: %w", err)
	}

	return decodeSnapshot(data, filepath.Ext(path))
}

func decodeSnapshot(data []byte, ext string) (Snapshot, error) {
	var snapshot Snapshot

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snapshot); err != nil {
			return Snapshot{}, fmt.Errorf("error decoding YAML snapshot: %w", err)
		}
	default:
		// UseNumber keeps whole note field values as integers instead of
		// collapsing every JSON number to float64.
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&snapshot); err != nil {
			return Snapshot{}, fmt.Errorf("error decoding JSON snapshot: %w", err)
		}
	}

	return snapshot, nil
}
