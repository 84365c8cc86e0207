package utils

import "golang.org/x/exp/constraints"

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts x to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// AlignUp rounds n up to the nearest multiple of align.
// An align value smaller than 2 leaves n unchanged.
func AlignUp[T constraints.Integer](n, align T) T {
	if align < 2 {
		return n
	}
	return (n + align - 1) / align * align
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo[T constraints.Integer](n T) bool {
	return n > 0 && n&(n-1) == 0
}
