package types

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field used in update payloads for
// nullable fields. A patch must be able to tell three cases apart:
//
//	absent:        field not present in the payload; keep stored value
//	explicit null: field present as JSON null; clear the stored value
//	value:         field present with a value; overwrite
//
// A plain pointer collapses the first two cases, so nullable fields get
// this type instead. The zero value means "absent".
type Optional[T any] struct {
	Set   bool // field appeared in the payload
	Null  bool // field was an explicit JSON null
	Value T
}

// Some returns an Optional carrying a value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

var jsonNull = []byte("null")

// UnmarshalJSON is only invoked when the field is present in the
// payload, which is exactly what Set records. encoding/json never calls
// it for absent fields, so the zero value survives as "absent".
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, jsonNull) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON renders absent and null states as JSON null. Update
// payloads are request-only, so this mostly serves tests and logging.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}
