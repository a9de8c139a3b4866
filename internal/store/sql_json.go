// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

import (
	"encoding/json"
	"fmt"

	"github.com/spacenote/spacenote/models"
)

// The PostgreSQL backend stores the dynamic parts of the data model —
// fields payloads, field schemas, member lists — in jsonb columns. These
// helpers are the single (de)serialization point for those columns.

func fieldsToJSON(m models.FieldMap) ([]byte, error) {
	if m == nil {
		m = models.FieldMap{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding fields payload: %w", err)
	}
	return raw, nil
}

func fieldsFromJSON(raw []byte) (models.FieldMap, error) {
	var m models.FieldMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding fields payload: %w", err)
	}
	return m, nil
}

func schemaToJSON(s models.Schema) ([]byte, error) {
	if s == nil {
		s = models.Schema{}
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding field schema: %w", err)
	}
	return raw, nil
}

func schemaFromJSON(raw []byte) (models.Schema, error) {
	var s models.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decoding field schema: %w", err)
	}
	return s, nil
}

func membersToJSON(members []string) ([]byte, error) {
	if members == nil {
		members = []string{}
	}
	raw, err := json.Marshal(members)
	if err != nil {
		return nil, fmt.Errorf("encoding members list: %w", err)
	}
	return raw, nil
}

func membersFromJSON(raw []byte) ([]string, error) {
	var members []string
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("decoding members list: %w", err)
	}
	return members, nil
}
