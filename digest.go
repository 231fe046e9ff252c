package cryptokit

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// HashAlgorithm identifies a digest in the suite.
type HashAlgorithm int

const (
	MD5 HashAlgorithm = iota
	SHA1
	SHA256
)

// String returns the canonical name of the algorithm.
func (a HashAlgorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	default:
		return fmt.Sprintf("HashAlgorithm(%d)", int(a))
	}
}

// ParseHashAlgorithm maps an algorithm name to its HashAlgorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch strings.ToLower(name) {
	case "md5":
		return MD5, nil
	case "sha1", "sha-1":
		return SHA1, nil
	case "sha256", "sha-256":
		return SHA256, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Digest accumulates a byte stream and produces a fixed-size sum.
//
// A digest is a two-state machine: it accumulates until the first Sum
// call finalizes it, after which Write fails with ErrDigestFinalized
// and further Sum calls replay the cached result.
type Digest interface {
	// Write absorbs the next chunk of the message. Chunks may have
	// any length and any alignment.
	Write(p []byte) (int, error)

	// Sum finalizes the digest on first call and returns a fresh
	// copy of the sum on every call.
	Sum() []byte

	// Size returns the sum length in bytes.
	Size() int

	// BlockSize returns the compression block size in bytes.
	BlockSize() int

	// Algorithm identifies the digest.
	Algorithm() HashAlgorithm
}

// NewHash returns a fresh digest for the given algorithm.
func NewHash(alg HashAlgorithm) (Digest, error) {
	switch alg {
	case MD5:
		return NewMD5(), nil
	case SHA1:
		return NewSHA1(), nil
	case SHA256:
		return NewSHA256(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// digestBlockSize is the Merkle-Damgard block size shared by the
// whole suite.
const digestBlockSize = 64

// mdCore carries the block buffering, message length and finalization
// latch common to all three Merkle-Damgard digests. The compression
// function stays with each algorithm.
type mdCore struct {
	block  [digestBlockSize]byte
	n      int    // buffered bytes in block
	length uint64 // total message bytes absorbed
	sum    []byte // non-nil once finalized
}

func (c *mdCore) done() bool { return c.sum != nil }

// feed absorbs p, compressing every full block.
func (c *mdCore) feed(p []byte, compress func([]byte)) {
	c.length += uint64(len(p))
	if c.n > 0 {
		m := copy(c.block[c.n:], p)
		c.n += m
		p = p[m:]
		if c.n == digestBlockSize {
			compress(c.block[:])
			c.n = 0
		}
	}
	for len(p) >= digestBlockSize {
		compress(p[:digestBlockSize])
		p = p[digestBlockSize:]
	}
	if len(p) > 0 {
		c.n = copy(c.block[:], p)
	}
}

// pad appends the 0x80 marker, zeros to 56 mod 64, and the 64-bit
// message bit length in the given byte order, compressing as it goes.
// MD5 writes the length little-endian; SHA-1 and SHA-256 big-endian.
func (c *mdCore) pad(order binary.ByteOrder, compress func([]byte)) {
	bitLen := c.length << 3
	var trailer [digestBlockSize + 8]byte
	trailer[0] = 0x80
	padLen := 56 - int(c.length%digestBlockSize)
	if padLen <= 0 {
		padLen += digestBlockSize
	}
	order.PutUint64(trailer[padLen:], bitLen)
	c.feed(trailer[:padLen+8], compress)
}
