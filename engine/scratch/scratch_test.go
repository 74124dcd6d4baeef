package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprintfVerbs(t *testing.T) {
	Init(64)
	Reset()

	assert.Equal(t, "hello world", Sprintf("hello %s", "world"))
	assert.Equal(t, "n=-42", Sprintf("n=%d", -42))
	assert.Equal(t, "u=7", Sprintf("u=%u", uint(7)))
	assert.Equal(t, "1.50 px", Sprintf("%.2f px", float32(1.5)))
	assert.Equal(t, "100%", Sprintf("100%%"))
}

func TestSprintfDefaultFloatPrecision(t *testing.T) {
	Init(64)
	Reset()
	assert.Equal(t, "2.000", Sprintf("%f", 2.0))
}

func TestResetReclaimsSpace(t *testing.T) {
	Init(32)
	Reset()
	Sprintf("%s", "something fairly long here")
	used := Len()
	assert.Greater(t, used, 0)

	Reset()
	assert.Equal(t, 0, Len())
}

func TestSprintfGrowsPastCapacity(t *testing.T) {
	Init(4)
	Reset()
	out := Sprintf("%s and %s", "first", "second")
	assert.Equal(t, "first and second", out)
}
