// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarshalBSONValue stores the value as its natural BSON shape, mirroring the
// JSON encoding: strings, int64, doubles, booleans, string arrays, or null.
func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(v.Any())
}

// UnmarshalBSONValue decodes any of the supported BSON shapes back into the
// closed variant set. int32 and int64 both map to the integer variant,
// doubles to the float variant.
func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	var decoded any
	if err := raw.Unmarshal(&decoded); err != nil {
		return fmt.Errorf("decoding bson field value: %w", err)
	}

	parsed, err := fromBSONAny(decoded)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// fromBSONAny extends FromAny with the driver-specific container types that
// bson.RawValue.Unmarshal produces.
func fromBSONAny(raw any) (Value, error) {
	switch val := raw.(type) {
	case primitive.A:
		return FromAny([]any(val))
	case primitive.Null:
		return Null(), nil
	default:
		return FromAny(raw)
	}
}
