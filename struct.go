package option

// Replace returns Some(value) if o already contains a value, discarding the
// old one. Replacing into a none Option is a no-op: the replacement is only
// installed when a value already existed.
func (o Option[T]) Replace(value T) Option[T] {
	if !o.some {
		return o
	}

	return Some(value)
}

// Pair holds the two values of a zipped Option.
type Pair[T any, U any] struct {
	First  T
	Second U
}

// Zip combines two Options into one containing both values.
// The result is none when either input is none.
func Zip[T any, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	if !a.some || !b.some {
		return None[Pair[T, U]]()
	}

	return Some(Pair[T, U]{
		First:  a.value,
		Second: b.value,
	})
}

// Unzip splits an Option of a [Pair] into two Options.
// Both results are none when o is none.
func Unzip[T any, U any](o Option[Pair[T, U]]) (Option[T], Option[U]) {
	if !o.some {
		return None[T](), None[U]()
	}

	return Some(o.value.First), Some(o.value.Second)
}

// Flatten removes one level of nesting from an Option of an Option.
// Deeper nesting unwinds one level per call.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}

	return o.value
}
