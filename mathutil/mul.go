package mathutil

import (
	"golang.org/x/exp/constraints"

	"github.com/xeptore/filesize/must"
)

// MulChecked returns a*b and whether the product fits in T.
func MulChecked[T constraints.Unsigned](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// ScaleDown converts v expressed in units of size from into units of size to,
// where from <= to. The division truncates.
func ScaleDown[T constraints.Unsigned](v, from, to T) T {
	must.Be(from != 0 && to >= from, "scale down from a smaller to a larger unit")
	return v / (to / from)
}

// ScaleUp converts v expressed in units of size from into units of size to,
// where from >= to. ok is false if the result does not fit in T.
func ScaleUp[T constraints.Unsigned](v, from, to T) (res T, ok bool) {
	must.Be(to != 0 && from >= to, "scale up from a larger to a smaller unit")
	return MulChecked(v, from/to)
}
