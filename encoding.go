package option

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler:
// a present value marshals as the value itself, an absent one as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler: null decodes to none.
// An absent field is none as well, since the zero value of Option is none.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*o = None[T]()

		return nil
	}

	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return err
	}

	*o = Some(value)

	return nil
}

// MarshalYAML implements yaml.Marshaler:
// a present value marshals as the value itself, an absent one as null.
func (o Option[T]) MarshalYAML() (interface{}, error) {
	if !o.some {
		return nil, nil
	}

	return o.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler: null decodes to none.
func (o *Option[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*o = None[T]()

		return nil
	}

	var v T

	err := value.Decode(&v)
	if err != nil {
		return err
	}

	*o = Some(v)

	return nil
}

// IsZero returns true if the Option is none, so encoders honoring the
// omitempty flag (eg. yaml.v3) elide absent values.
func (o Option[T]) IsZero() bool {
	return !o.some
}
