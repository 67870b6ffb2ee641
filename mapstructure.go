package option

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// decoder is implemented by *Option[T] for every T,
// allowing DecodeHookFunc to populate Options without knowing T.
type decoder interface {
	decodeRaw(data interface{}) error
}

func (o *Option[T]) decodeRaw(data interface{}) error {
	if data == nil {
		*o = None[T]()

		return nil
	}

	var value T

	err := mapstructure.Decode(data, &value)
	if err != nil {
		return err
	}

	*o = Some(value)

	return nil
}

// DecodeHookFunc returns a [mapstructure.DecodeHookFunc] that decodes raw
// values into Option fields: nil decodes to none, anything else decodes
// into the payload type and wraps it. Fields absent from the source are
// left untouched, which is none as well (the zero value of Option).
func DecodeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Value, to reflect.Value) (interface{}, error) {
		target := reflect.New(to.Type())

		d, ok := target.Interface().(decoder)
		if !ok {
			return from.Interface(), nil
		}

		err := d.decodeRaw(from.Interface())
		if err != nil {
			return nil, err
		}

		return target.Elem().Interface(), nil
	}
}
