package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ref is an optional foreign key to a lookup record. The zero value is an
// unset reference. A set Ref never holds id 0.
//
// On the wire the catalog backend encodes "no selection" as 0, so an unset
// Ref marshals to 0 and both 0 and null unmarshal to an unset Ref.
type Ref struct {
	id    int
	valid bool
}

// NoRef is the unset reference.
var NoRef = Ref{}

// RefTo returns a reference to the record with the given id. Non-positive
// ids produce an unset reference.
func RefTo(id int) Ref {
	if id <= 0 {
		return NoRef
	}
	return Ref{id: id, valid: true}
}

// ParseRef parses a form value ("" or "0" for no selection).
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoRef, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return NoRef, fmt.Errorf("parsing reference %q: %w", s, err)
	}
	return RefTo(id), nil
}

// Get returns the referenced id and whether the reference is set.
func (r Ref) Get() (int, bool) {
	return r.id, r.valid
}

// IsSet reports whether the reference points at a record.
func (r Ref) IsSet() bool {
	return r.valid
}

// Is reports whether the reference points at the record with the given id.
func (r Ref) Is(id int) bool {
	return r.valid && r.id == id
}

// Equal reports whether both references point at the same record, or are
// both unset.
func (r Ref) Equal(other Ref) bool {
	return r == other
}

// String returns the id as a form value, or "" when unset.
func (r Ref) String() string {
	if !r.valid {
		return ""
	}
	return strconv.Itoa(r.id)
}

// MarshalJSON encodes the reference using the backend's 0 sentinel for unset.
func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("0"), nil
	}
	return []byte(strconv.Itoa(r.id)), nil
}

// UnmarshalJSON accepts an integer, a numeric string, an empty string or
// null. The last two decode to an unset reference.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = NoRef
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decoding reference: %w", err)
		}
	}
	ref, err := ParseRef(raw)
	if err != nil {
		return fmt.Errorf("decoding reference: %w", err)
	}
	*r = ref
	return nil
}
