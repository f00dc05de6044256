package unit

// Decimal (SI) multiples only.
// https://en.wikipedia.org/wiki/Kilobyte
const (
	Byte     uint64 = 1
	Kilobyte        = 1000 * Byte
	Megabyte        = 1000 * Kilobyte
	Gigabyte        = 1000 * Megabyte
)
