package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a three-state JSON field: absent, explicit null, or a value.
// A field left out of the payload keeps Set false; "field": null sets Set
// with Valid false. Partial updates rely on this distinction.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
