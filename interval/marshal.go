package interval

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// bounds is the wire shape of an Interval. Absent boundaries serialize as
// null.
type bounds[T Point[T]] struct {
	Start *T `json:"start" yaml:"start"`
	End   *T `json:"end" yaml:"end"`
}

// MarshalJSON encodes the interval as {"start": ..., "end": ...} with null
// for unbounded sides.
//
// Implements the json.Marshaler interface.
func (i Interval[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(bounds[T]{Start: i.start, End: i.end})
}

// UnmarshalJSON decodes an interval, rejecting inverted boundaries.
//
// Implements the json.Unmarshaler interface.
func (i *Interval[T]) UnmarshalJSON(data []byte) error {
	var b bounds[T]
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}

	iv, err := New(b.Start, b.End)
	if err != nil {
		return err
	}
	*i = iv

	return nil
}

// MarshalYAML encodes the interval as a mapping with start and end keys.
//
// Implements the yaml.Marshaler interface.
func (i Interval[T]) MarshalYAML() (any, error) {
	return bounds[T]{Start: i.start, End: i.end}, nil
}

// UnmarshalYAML decodes an interval, rejecting inverted boundaries.
//
// Implements the yaml.Unmarshaler interface.
func (i *Interval[T]) UnmarshalYAML(node *yaml.Node) error {
	var b bounds[T]
	if err := node.Decode(&b); err != nil {
		return err
	}

	iv, err := New(b.Start, b.End)
	if err != nil {
		return err
	}
	*i = iv

	return nil
}
