package cryptokit

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// BigInt is an immutable arbitrary-precision signed integer. Every
// operation returns a new value; the wrapped big.Int is never mutated
// after construction, so values can be shared freely.
type BigInt struct {
	v *big.Int
}

func wrapBig(v *big.Int) *BigInt { return &BigInt{v: v} }

// BigIntFromInt64 returns the value of n.
func BigIntFromInt64(n int64) *BigInt {
	return wrapBig(big.NewInt(n))
}

// BigIntFromString parses a decimal string, or a hexadecimal one with
// a 0x prefix (an optional leading minus sign is allowed in both).
func BigIntFromString(s string) (*BigInt, error) {
	body := s
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	} else if strings.HasPrefix(body, "+") {
		body = body[1:]
	}

	base := 10
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		base = 16
		body = body[2:]
	}

	v, ok := new(big.Int).SetString(body, base)
	if !ok || body == "" {
		return nil, fmt.Errorf("cryptokit: invalid integer literal %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return wrapBig(v), nil
}

// BigIntFromBytes interprets b as an unsigned big-endian magnitude.
// The result is never negative.
func BigIntFromBytes(b []byte) *BigInt {
	return wrapBig(new(big.Int).SetBytes(b))
}

// Clone returns a copy.
func (x *BigInt) Clone() *BigInt {
	return wrapBig(new(big.Int).Set(x.v))
}

// Int64 returns the low 64 bits of x as a signed integer; the result
// is undefined when x does not fit.
func (x *BigInt) Int64() int64 { return x.v.Int64() }

// String renders x in decimal.
func (x *BigInt) String() string { return x.v.String() }

// Text renders x in the given radix (2 through 62).
func (x *BigInt) Text(radix int) string { return x.v.Text(radix) }

// Digits returns the magnitude of x as digits in the given base,
// least significant first, plus whether x is negative. Zero yields a
// single zero digit.
func (x *BigInt) Digits(base int) ([]int, bool, error) {
	if base < 2 {
		return nil, false, fmt.Errorf("cryptokit: digit base must be >= 2, got %d", base)
	}
	neg := x.v.Sign() < 0
	rem := new(big.Int).Abs(x.v)
	if rem.Sign() == 0 {
		return []int{0}, false, nil
	}
	b := big.NewInt(int64(base))
	mod := new(big.Int)
	var digits []int
	for rem.Sign() > 0 {
		rem.QuoRem(rem, b, mod)
		digits = append(digits, int(mod.Int64()))
	}
	return digits, neg, nil
}

// Arithmetic. Div truncates toward zero; Mod is always non-negative.

func (x *BigInt) Add(y *BigInt) *BigInt { return wrapBig(new(big.Int).Add(x.v, y.v)) }
func (x *BigInt) Sub(y *BigInt) *BigInt { return wrapBig(new(big.Int).Sub(x.v, y.v)) }
func (x *BigInt) Mul(y *BigInt) *BigInt { return wrapBig(new(big.Int).Mul(x.v, y.v)) }
func (x *BigInt) Neg() *BigInt          { return wrapBig(new(big.Int).Neg(x.v)) }
func (x *BigInt) Abs() *BigInt          { return wrapBig(new(big.Int).Abs(x.v)) }

// Div returns the quotient truncated toward zero. Division by zero is
// an error.
func (x *BigInt) Div(y *BigInt) (*BigInt, error) {
	if y.v.Sign() == 0 {
		return nil, ErrZeroModulus
	}
	return wrapBig(new(big.Int).Quo(x.v, y.v)), nil
}

// Mod returns x mod m, normalized into [0, |m|): when the truncated
// remainder is negative, |m| is added once.
func (x *BigInt) Mod(m *BigInt) (*BigInt, error) {
	if m.v.Sign() == 0 {
		return nil, ErrZeroModulus
	}
	r := new(big.Int).Rem(x.v, m.v)
	if r.Sign() < 0 {
		r.Add(r, new(big.Int).Abs(m.v))
	}
	return wrapBig(r), nil
}

// Pow returns x raised to a non-negative exponent.
func (x *BigInt) Pow(e *BigInt) (*BigInt, error) {
	if e.v.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	return wrapBig(new(big.Int).Exp(x.v, e.v, nil)), nil
}

// ModPow returns x**e mod |m| by square-and-multiply, reducing after
// every step. The exponent must be non-negative and the modulus
// non-zero; the result is in [0, |m|).
func (x *BigInt) ModPow(e, m *BigInt) (*BigInt, error) {
	if e.v.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if m.v.Sign() == 0 {
		return nil, ErrZeroModulus
	}
	r := new(big.Int).Exp(x.v, e.v, m.v)
	if r.Sign() < 0 {
		r.Add(r, new(big.Int).Abs(m.v))
	}
	return wrapBig(r), nil
}

// ModInverse returns the inverse of x modulo |m| via the extended
// Euclidean algorithm, or an error when gcd(x, m) != 1.
func (x *BigInt) ModInverse(m *BigInt) (*BigInt, error) {
	if m.v.Sign() == 0 {
		return nil, ErrZeroModulus
	}
	inv := new(big.Int).ModInverse(x.v, new(big.Int).Abs(m.v))
	if inv == nil {
		return nil, ErrNotInvertible
	}
	return wrapBig(inv), nil
}

// Comparisons.

// Cmp returns -1, 0 or 1.
func (x *BigInt) Cmp(y *BigInt) int { return x.v.Cmp(y.v) }

func (x *BigInt) Equal(y *BigInt) bool     { return x.v.Cmp(y.v) == 0 }
func (x *BigInt) NotEqual(y *BigInt) bool  { return x.v.Cmp(y.v) != 0 }
func (x *BigInt) Greater(y *BigInt) bool   { return x.v.Cmp(y.v) > 0 }
func (x *BigInt) GreaterEq(y *BigInt) bool { return x.v.Cmp(y.v) >= 0 }
func (x *BigInt) Less(y *BigInt) bool      { return x.v.Cmp(y.v) < 0 }
func (x *BigInt) LessEq(y *BigInt) bool    { return x.v.Cmp(y.v) <= 0 }

// Bitwise operations use the two's-complement view of negative values,
// matching the serialization convention below.

func (x *BigInt) And(y *BigInt) *BigInt { return wrapBig(new(big.Int).And(x.v, y.v)) }
func (x *BigInt) Or(y *BigInt) *BigInt  { return wrapBig(new(big.Int).Or(x.v, y.v)) }
func (x *BigInt) Xor(y *BigInt) *BigInt { return wrapBig(new(big.Int).Xor(x.v, y.v)) }
func (x *BigInt) Not() *BigInt          { return wrapBig(new(big.Int).Not(x.v)) }
func (x *BigInt) Lsh(n uint) *BigInt    { return wrapBig(new(big.Int).Lsh(x.v, n)) }
func (x *BigInt) Rsh(n uint) *BigInt    { return wrapBig(new(big.Int).Rsh(x.v, n)) }

// Predicates and utilities.

// Sign returns -1, 0 or 1.
func (x *BigInt) Sign() int { return x.v.Sign() }

func (x *BigInt) IsPositive() bool { return x.v.Sign() > 0 }
func (x *BigInt) IsNegative() bool { return x.v.Sign() < 0 }
func (x *BigInt) IsZero() bool     { return x.v.Sign() == 0 }
func (x *BigInt) IsOdd() bool      { return x.v.Bit(0) == 1 }
func (x *BigInt) IsEven() bool     { return x.v.Bit(0) == 0 }

// IsUnit reports whether x is 1 or -1.
func (x *BigInt) IsUnit() bool { return x.v.CmpAbs(oneBig) == 0 }

// DivisibleBy reports whether d divides x. Zero divides only zero.
func (x *BigInt) DivisibleBy(d *BigInt) bool {
	if d.v.Sign() == 0 {
		return x.v.Sign() == 0
	}
	return new(big.Int).Rem(x.v, d.v).Sign() == 0
}

// BitLen returns the length of the magnitude in bits; BitLen(0) == 0.
func (x *BigInt) BitLen() int { return x.v.BitLen() }

var oneBig = big.NewInt(1)

// Static helpers.

// GCD returns the non-negative greatest common divisor; GCD(0, 0) is 0.
func GCD(a, b *BigInt) *BigInt {
	return wrapBig(new(big.Int).GCD(nil, nil,
		new(big.Int).Abs(a.v), new(big.Int).Abs(b.v)))
}

// LCM returns the non-negative least common multiple; zero when either
// operand is zero.
func LCM(a, b *BigInt) *BigInt {
	if a.v.Sign() == 0 || b.v.Sign() == 0 {
		return BigIntFromInt64(0)
	}
	g := GCD(a, b)
	p := new(big.Int).Mul(new(big.Int).Abs(a.v), new(big.Int).Abs(b.v))
	return wrapBig(p.Quo(p, g.v))
}

// MinBigInt returns the smallest of its arguments.
func MinBigInt(first *BigInt, rest ...*BigInt) *BigInt {
	min := first
	for _, x := range rest {
		if x.Less(min) {
			min = x
		}
	}
	return min
}

// MaxBigInt returns the largest of its arguments.
func MaxBigInt(first *BigInt, rest ...*BigInt) *BigInt {
	max := first
	for _, x := range rest {
		if x.Greater(max) {
			max = x
		}
	}
	return max
}

// RandomBigInt returns a uniformly distributed value in the inclusive
// range [min, max], drawn from crypto/rand. The draw rejection-samples
// over the range width, so there is no modular-reduction bias.
func RandomBigInt(min, max *BigInt) (*BigInt, error) {
	if min.Greater(max) {
		return nil, fmt.Errorf("cryptokit: empty random range [%s, %s]", min, max)
	}
	width := new(big.Int).Sub(max.v, min.v)
	width.Add(width, oneBig)
	n, err := rand.Int(rand.Reader, width)
	if err != nil {
		return nil, fmt.Errorf("cryptokit: random source failed: %w", err)
	}
	return wrapBig(n.Add(n, min.v)), nil
}

// Serialization: minimal two's-complement little-endian bytes, with
// exactly one extra sign-extension byte (0x00 or 0xFF) appended when
// the top bit of the last magnitude byte would otherwise misrepresent
// the sign. Zero serializes to the empty buffer. This convention is
// shared with higher protocol layers and must round-trip exactly.

// FromBigInt converts v to its byte representation.
func FromBigInt(v *BigInt) *Buffer {
	if v.v.Sign() == 0 {
		return NewBuffer(0)
	}

	mag := new(big.Int).Abs(v.v).Bytes() // big-endian, no leading zeros
	n := len(mag)
	le := make([]byte, n, n+1)
	for i, b := range mag {
		le[n-1-i] = b
	}

	if v.v.Sign() > 0 {
		if le[n-1]&0x80 != 0 {
			le = append(le, 0x00)
		}
		return &Buffer{data: le}
	}

	// Two's complement over n bytes: 2^(8n) + v.
	t := new(big.Int).Lsh(oneBig, uint(8*n))
	t.Add(t, v.v)
	tb := t.Bytes()
	for i := range le {
		le[i] = 0
	}
	for i, b := range tb {
		le[len(tb)-1-i] = b
	}
	if le[n-1]&0x80 == 0 {
		le = append(le, 0xff)
	}
	return &Buffer{data: le}
}

// BigInt interprets the buffer as minimal two's-complement
// little-endian bytes. The empty buffer is zero.
func (b *Buffer) BigInt() *BigInt {
	n := len(b.data)
	if n == 0 {
		return BigIntFromInt64(0)
	}
	be := make([]byte, n)
	for i, v := range b.data {
		be[n-1-i] = v
	}
	x := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(oneBig, uint(8*n)))
	}
	return wrapBig(x)
}
