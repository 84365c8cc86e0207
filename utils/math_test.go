package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 7))
	assert.Equal(2, Min(7, 2))
	assert.Equal(7, Max(2, 7))
	assert.Equal(7, Max(7, 2))
	assert.Equal(-1.5, Min(-1.5, 0.0))
}

func TestUtils_Clamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int64(0), Clamp(int64(-12), 0, 255))
	assert.Equal(int64(255), Clamp(int64(1<<20), 0, 255))
	assert.Equal(int64(54), Clamp(int64(54), 0, 255))
}

func TestUtils_AlignUp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(10, AlignUp(10, 0))
	assert.Equal(10, AlignUp(10, 1))
	assert.Equal(16, AlignUp(10, 16))
	assert.Equal(16, AlignUp(16, 16))
	assert.Equal(12, AlignUp(10, 3))
}

func TestUtils_IsPowerOfTwo(t *testing.T) {
	assert := assert.New(t)

	for _, n := range []int32{1, 2, 4, 4096, 1 << 24} {
		assert.True(IsPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int32{0, -4096, 3, 4095, 1000} {
		assert.False(IsPowerOfTwo(n), "%d", n)
	}
}
