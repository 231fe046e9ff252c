package cryptokit

import (
	"encoding/binary"
	"math/bits"
)

// SHA-1 per FIPS 180-4 section 6.1. Big-endian throughout.

var sha1Init = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// sha1K holds one round constant per 20-round phase.
var sha1K = [4]uint32{0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xca62c1d6}

type sha1Digest struct {
	h    [5]uint32
	core mdCore
}

// NewSHA1 returns a fresh SHA-1 digest.
func NewSHA1() Digest {
	return &sha1Digest{h: sha1Init}
}

// SumSHA1 computes the SHA-1 digest of data in one shot.
func SumSHA1(data []byte) []byte {
	d := NewSHA1()
	d.Write(data)
	return d.Sum()
}

func (d *sha1Digest) Size() int                { return 20 }
func (d *sha1Digest) BlockSize() int           { return digestBlockSize }
func (d *sha1Digest) Algorithm() HashAlgorithm { return SHA1 }

func (d *sha1Digest) Write(p []byte) (int, error) {
	if d.core.done() {
		return 0, ErrDigestFinalized
	}
	d.core.feed(p, d.compress)
	return len(p), nil
}

func (d *sha1Digest) Sum() []byte {
	if !d.core.done() {
		d.core.pad(binary.BigEndian, d.compress)
		out := make([]byte, 20)
		for i, w := range d.h {
			binary.BigEndian.PutUint32(out[4*i:], w)
		}
		d.core.sum = out
	}
	return append([]byte(nil), d.core.sum...)
}

// compress absorbs one 64-byte block: 16 words expanded to 80, then
// four 20-round phases of choice/parity/majority logic.
func (d *sha1Digest) compress(block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, dd, e := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]

	for i := 0; i < 80; i++ {
		var f uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & dd)
		case i < 40:
			f = b ^ c ^ dd
		case i < 60:
			f = (b & c) | (b & dd) | (c & dd)
		default:
			f = b ^ c ^ dd
		}
		t := bits.RotateLeft32(a, 5) + f + e + sha1K[i/20] + w[i]
		e, dd, c, b, a = dd, c, bits.RotateLeft32(b, 30), a, t
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
}
