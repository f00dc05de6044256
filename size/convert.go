package size

import (
	"strconv"
	"strings"

	"github.com/xeptore/filesize/mathutil"
	"github.com/xeptore/filesize/must"
)

// Sizes holds the same physical size expressed in each decimal unit.
type Sizes struct {
	Bytes     uint64
	Kilobytes uint64
	Megabytes uint64
	Gigabytes uint64
}

// Get returns the field of s for u.
func (s Sizes) Get(u Unit) uint64 {
	switch u {
	case Bytes:
		return s.Bytes
	case Kilobytes:
		return s.Kilobytes
	case Megabytes:
		return s.Megabytes
	case Gigabytes:
		return s.Gigabytes
	default:
		panic("unknown unit")
	}
}

func (s *Sizes) set(u Unit, v uint64) {
	switch u {
	case Bytes:
		s.Bytes = v
	case Kilobytes:
		s.Kilobytes = v
	case Megabytes:
		s.Megabytes = v
	case Gigabytes:
		s.Gigabytes = v
	default:
		panic("unknown unit")
	}
}

// String formats s as
//
//	Sizes { bytes: N bytes, kilobytes: N kilobytes, megabytes: N megabytes, gigabytes: N gigabytes }
func (s Sizes) String() string {
	var b strings.Builder
	b.WriteString("Sizes { ")
	for i, u := range Units {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(u.Label())
		b.WriteString(": ")
		b.WriteString(strconv.FormatUint(s.Get(u), 10))
		b.WriteString(" ")
		b.WriteString(u.Label())
	}
	b.WriteString(" }")
	return b.String()
}

// Convert expands q into all four units. Scaling to a larger unit truncates.
// Scaling to a smaller unit fails with ErrOverflow if the result does not fit
// in uint64.
func Convert(q Quantity) (Sizes, error) {
	var out Sizes
	from := q.Unit.Factor()
	for _, u := range Units {
		to := u.Factor()
		if to >= from {
			out.set(u, mathutil.ScaleDown(q.Value, from, to))
			continue
		}

		v, ok := mathutil.ScaleUp(q.Value, from, to)
		if !ok {
			return Sizes{}, ErrOverflow
		}
		out.set(u, v)
	}

	must.Equal(q.Value, out.Get(q.Unit), "value of input unit")

	return out, nil
}
