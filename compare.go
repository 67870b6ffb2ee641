package option

import "golang.org/x/exp/constraints"

// Equal returns true if a and b are the same variant and
// (when both contain a value) their values are equal.
func Equal[T comparable](a Option[T], b Option[T]) bool {
	if a.some != b.some {
		return false
	}

	return !a.some || a.value == b.value
}

// Compare orders two Options: none compares less than any value,
// two values compare naturally.
// The result is -1, 0 or +1.
func Compare[T constraints.Ordered](a Option[T], b Option[T]) int {
	switch {
	case !a.some && !b.some:
		return 0
	case !a.some:
		return -1
	case !b.some:
		return 1
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}
