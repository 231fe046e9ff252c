package cryptokit

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by this package. Callers can match them
// with errors.Is even when they arrive wrapped with extra context.
var (
	// ErrDigestFinalized is returned by Write on a digest, HMAC or
	// any other one-shot accumulator whose Sum has already been taken.
	ErrDigestFinalized = errors.New("cryptokit: digest already finalized")

	// ErrUnknownEncoding is returned when an encoding name or value
	// is not one of the supported encodings.
	ErrUnknownEncoding = errors.New("cryptokit: unknown encoding")

	// ErrUnknownAlgorithm is returned when a hash algorithm name or
	// value is not one of the supported algorithms.
	ErrUnknownAlgorithm = errors.New("cryptokit: unknown hash algorithm")

	// ErrOutOfRange is returned when a view's offset and length fall
	// outside its backing buffer.
	ErrOutOfRange = errors.New("cryptokit: range out of bounds")

	// ErrNegativeExponent is returned by Pow and ModPow; rational
	// results are not representable.
	ErrNegativeExponent = errors.New("cryptokit: negative exponent")

	// ErrNotInvertible is returned by ModInverse when the operand and
	// modulus are not coprime.
	ErrNotInvertible = errors.New("cryptokit: no modular inverse (gcd != 1)")

	// ErrZeroModulus is returned by modular operations given a zero
	// modulus.
	ErrZeroModulus = errors.New("cryptokit: zero modulus")
)

// KeySizeError reports a cipher key whose length is not 16, 24 or 32
// bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "cryptokit: invalid key size " + strconv.Itoa(int(k)) + " (want 16, 24, or 32)"
}

// IVSizeError reports an IV/counter whose length is not the cipher
// block size.
type IVSizeError int

func (i IVSizeError) Error() string {
	return "cryptokit: invalid IV size " + strconv.Itoa(int(i)) + " (want 16)"
}
