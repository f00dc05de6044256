package must

import (
	"fmt"
)

func Be(expr bool, msg string) {
	if !expr {
		panic("assertion failed: " + msg)
	}
}

func Equal[T comparable](want, got T, what string) {
	if want != got {
		panic(fmt.Sprintf("assertion failed: %s: expected %v, got %v", what, want, got))
	}
}
