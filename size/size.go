package size

import (
	"github.com/xeptore/filesize/unit"
)

// Unit is one of the four decimal size units.
type Unit uint8

const (
	Bytes Unit = iota
	Kilobytes
	Megabytes
	Gigabytes
)

// Units lists every unit from the smallest to the largest.
var Units = []Unit{Bytes, Kilobytes, Megabytes, Gigabytes}

// String returns the input token of u.
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "b"
	case Kilobytes:
		return "kb"
	case Megabytes:
		return "mb"
	case Gigabytes:
		return "gb"
	default:
		panic("unknown unit")
	}
}

// Label returns the plural name of u as printed next to a value.
func (u Unit) Label() string {
	switch u {
	case Bytes:
		return "bytes"
	case Kilobytes:
		return "kilobytes"
	case Megabytes:
		return "megabytes"
	case Gigabytes:
		return "gigabytes"
	default:
		panic("unknown unit")
	}
}

// Factor returns the number of bytes in one u.
func (u Unit) Factor() uint64 {
	switch u {
	case Bytes:
		return unit.Byte
	case Kilobytes:
		return unit.Kilobyte
	case Megabytes:
		return unit.Megabyte
	case Gigabytes:
		return unit.Gigabyte
	default:
		panic("unknown unit")
	}
}

// Quantity is a value tagged with exactly one unit.
type Quantity struct {
	Unit  Unit
	Value uint64
}
