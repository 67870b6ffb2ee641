package option

// Map applies fn to the contained value (if any) and wraps the result.
// fn is invoked at most once and never speculatively.
//
// Map is a package-level function because Go methods cannot introduce
// new type parameters.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}

	return Some(fn(o.value))
}

// MapOr applies fn to the contained value (if any), otherwise returns def.
// def is an eagerly supplied value; use [MapOrElse] to defer its computation.
func MapOr[T any, U any](o Option[T], def U, fn func(T) U) U {
	if !o.some {
		return def
	}

	return fn(o.value)
}

// MapOrElse applies fn to the contained value (if any),
// otherwise invokes def and returns its result.
// Exactly one of def and fn is invoked.
func MapOrElse[T any, U any](o Option[T], def func() U, fn func(T) U) U {
	if !o.some {
		return def()
	}

	return fn(o.value)
}
