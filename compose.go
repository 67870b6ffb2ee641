package option

// And returns other if o contains a value, otherwise none.
// The value of o itself is discarded, only its presence matters.
func And[T any, U any](o Option[T], other Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}

	return other
}

// AndThen applies fn (which may itself return none) to the contained value
// (if any), otherwise returns none.
// It allows chaining option-producing operations without nested unwrapping.
func AndThen[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}

	return fn(o.value)
}

// Filter returns o if it contains a value and the value satisfies pred,
// otherwise none. pred is not invoked when o is none.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}

	return None[T]()
}

// Or returns o if it contains a value, otherwise other
// (which may itself be none).
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}

	return other
}

// OrElse returns o if it contains a value, otherwise the result of fn.
// fn is invoked only when o is none.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}

	return fn()
}

// Xor returns whichever of o and other contains a value when exactly one does,
// otherwise none. Unlike [Option.Or], two present values yield none rather
// than an arbitrary pick.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.some == other.some {
		return None[T]()
	}

	if o.some {
		return o
	}

	return other
}
