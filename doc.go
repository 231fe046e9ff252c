// Package cryptokit provides a self-contained binary data and
// cryptographic primitives layer: a fixed-length byte buffer with
// encoding conversions and structured integer/float I/O, the MD5,
// SHA-1 and SHA-256 digests, HMAC and PBKDF2 constructions, an AES
// block cipher with a CTR stream mode, and an immutable
// arbitrary-precision integer with modular arithmetic.
//
// The digest and cipher cores are implemented from first principles
// rather than delegating to crypto/* so the package can run in
// environments that expose only raw byte arrays and a secure random
// source. Every algorithm is validated bit-for-bit against the
// published reference vectors (RFC 1321, FIPS 180-4, RFC 4231,
// RFC 6070, FIPS 197, NIST SP 800-38A).
//
// Example usage:
//
//	sum := cryptokit.SumSHA256([]byte("block data"))
//	buf := cryptokit.NewBufferFrom(sum)
//	text, _ := buf.String(cryptokit.Hex)
//
// All operations are pure, synchronous computations over in-memory
// byte sequences. No state is shared between instances, so independent
// digests, streams and integers may be used from any number of
// goroutines without locking. Cost control is the caller's job: a
// large PBKDF2 iteration count or a huge input blocks the calling
// goroutine for as long as the arithmetic takes.
package cryptokit
