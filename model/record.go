package model

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is returned when a record lacks a key its report expects.
var ErrMissingColumn = errors.New("record is missing column")

// Field is one key/value pair of a record
type Field struct {
	Key   string
	Value string
}

// Record is an ordered, read-only mapping from column key to display string.
type Record []Field

// NewRecord builds a record from alternating keys and values. A trailing key without a value
// gets the empty string.
func NewRecord(kv ...string) Record {
	rec := make(Record, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		f := Field{Key: kv[i]}
		if i+1 < len(kv) {
			f.Value = kv[i+1]
		}
		rec = append(rec, f)
	}
	return rec
}

// Get returns the value stored under key
func (r Record) Get(key string) (string, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Value is like Get but reports a missing key as an error wrapping ErrMissingColumn.
func (r Record) Value(key string) (string, error) {
	v, ok := r.Get(key)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingColumn, key)
	}
	return v, nil
}

// Keys returns the keys in record order
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}
