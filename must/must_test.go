package must_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/filesize/must"
)

func TestBe(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { must.Be(true, "true") })
	assert.PanicsWithValue(t, "assertion failed: nope", func() { must.Be(false, "nope") })
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { must.Equal(uint64(3), uint64(3), "value") })
	assert.PanicsWithValue(t, "assertion failed: value: expected 3, got 4", func() { must.Equal(3, 4, "value") })
}
