// Package mathkit provides integer helpers for counter arithmetic,
// including an arbitrary-precision integer value type.
package mathkit

import (
	"cmp"
	"math/big"
	"unsafe"
)

// Int is the constraint for the signed integer types.
type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// MaxInt returns the maximum representable value of the given signed integer type.
func MaxInt[N Int]() N {
	var zero N
	bits := 8 * unsafe.Sizeof(zero)
	return N((1 << (bits - 1)) - 1)
}

// MinInt returns the minimum representable value of the given signed integer type.
func MinInt[N Int]() N {
	var zero N
	bits := 8 * unsafe.Sizeof(zero)
	return N(-1 << (bits - 1))
}

// SumInt adds two integers, reporting false instead of wrapping around on overflow.
func SumInt[N Int](a, b N) (N, bool) {
	if CanIntSumOverflow(a, b) {
		var zero N
		return zero, false
	}
	return a + b, true
}

// CanIntSumOverflow reports whether a+b would leave the representable range of N.
func CanIntSumOverflow[N Int](a, b N) bool {
	less, more := a, b
	if more < less {
		less, more = more, less
	}
	switch {
	case 0 < less && 0 < more:
		return MaxInt[N]()-more < less
	case less < 0 && more < 0:
		return more < MinInt[N]()-less
	default:
		// mixed signs cannot overflow,
		// even MinInt plus MaxInt stays in range
		return false
	}
}

// BigInt is an immutable integer value without an upper bound.
//
// As long as the value fits into INT, it is stored as a plain machine word,
// and only switches to a heap allocated big.Int representation past that range.
// The zero value is ready to use and equals zero.
type BigInt[INT Int] struct {
	big *big.Int
	n   INT
}

// Of returns the BigInt representation of the given machine-word integer.
func (BigInt[INT]) Of(n INT) BigInt[INT] {
	return BigInt[INT]{n: n}
}

// FromBigInt wraps a *big.Int value.
// The input is not retained when its value fits the machine-word range.
func (BigInt[INT]) FromBigInt(n *big.Int) BigInt[INT] {
	return BigInt[INT]{big: n}.normalise()
}

func (i BigInt[INT]) String() string {
	return i.widen().big.String()
}

// ToInt returns the machine-word representation of the value,
// and reports whether the value fits the INT range.
func (i BigInt[INT]) ToInt() (INT, bool) {
	i = i.normalise()
	return i.n, i.big == nil
}

// ToBigInt returns the value as a freshly usable *big.Int.
func (i BigInt[INT]) ToBigInt() *big.Int {
	return i.widen().big
}

func (i BigInt[INT]) Compare(o BigInt[INT]) int {
	if i.big == nil && o.big == nil {
		return cmp.Compare(i.n, o.n)
	}
	return i.widen().big.Cmp(o.widen().big)
}

func (i BigInt[INT]) IsZero() bool {
	return i.Compare(BigInt[INT]{}) == 0
}

// Add returns the sum of the two values,
// widening the representation when the machine-word range is exceeded.
func (i BigInt[INT]) Add(n BigInt[INT]) BigInt[INT] {
	if i.big == nil && n.big == nil {
		if sum, ok := SumInt(i.n, n.n); ok {
			return BigInt[INT]{n: sum}
		}
	}
	out := big.NewInt(0).Add(i.widen().big, n.widen().big)
	return BigInt[INT]{big: out}.normalise()
}

// Sub returns the difference of the two values.
func (i BigInt[INT]) Sub(n BigInt[INT]) BigInt[INT] {
	if i.big == nil && n.big == nil {
		if diff, ok := SumInt(i.n, -n.n); n.n != MinInt[INT]() && ok {
			return BigInt[INT]{n: diff}
		}
	}
	out := big.NewInt(0).Sub(i.widen().big, n.widen().big)
	return BigInt[INT]{big: out}.normalise()
}

// Inc returns the value incremented by one.
func (i BigInt[INT]) Inc() BigInt[INT] {
	return i.Add(BigInt[INT]{n: 1})
}

func (i BigInt[INT]) widen() BigInt[INT] {
	if i.big != nil {
		return i
	}
	return BigInt[INT]{big: big.NewInt(int64(i.n))}
}

// normalise switches back to the machine-word representation when the value fits.
func (i BigInt[INT]) normalise() BigInt[INT] {
	if i.big == nil {
		return i
	}
	if !i.big.IsInt64() {
		return i
	}
	n := i.big.Int64()
	if int64(MinInt[INT]()) <= n && n <= int64(MaxInt[INT]()) {
		return BigInt[INT]{n: INT(n)}
	}
	return i
}
