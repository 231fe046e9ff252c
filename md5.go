package cryptokit

import (
	"encoding/binary"
	"math/bits"
)

// MD5 per RFC 1321. The length trailer and the output words are
// little-endian, unlike the SHA family.

// md5Init is the RFC 1321 initial state A, B, C, D.
var md5Init = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// md5T[i] = floor(2^32 * abs(sin(i+1))).
var md5T = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// md5S holds the per-round left-rotate amounts, four per quarter.
var md5S = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

type md5Digest struct {
	s    [4]uint32
	core mdCore
}

// NewMD5 returns a fresh MD5 digest.
func NewMD5() Digest {
	return &md5Digest{s: md5Init}
}

// SumMD5 computes the MD5 digest of data in one shot.
func SumMD5(data []byte) []byte {
	d := NewMD5()
	d.Write(data)
	return d.Sum()
}

func (d *md5Digest) Size() int                { return 16 }
func (d *md5Digest) BlockSize() int           { return digestBlockSize }
func (d *md5Digest) Algorithm() HashAlgorithm { return MD5 }

func (d *md5Digest) Write(p []byte) (int, error) {
	if d.core.done() {
		return 0, ErrDigestFinalized
	}
	d.core.feed(p, d.compress)
	return len(p), nil
}

func (d *md5Digest) Sum() []byte {
	if !d.core.done() {
		d.core.pad(binary.LittleEndian, d.compress)
		out := make([]byte, 16)
		for i, w := range d.s {
			binary.LittleEndian.PutUint32(out[4*i:], w)
		}
		d.core.sum = out
	}
	return append([]byte(nil), d.core.sum...)
}

// compress absorbs one 64-byte block. The message words are consumed
// through the per-quarter index permutation rather than an expanded
// schedule.
func (d *md5Digest) compress(block []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, dd := d.s[0], d.s[1], d.s[2], d.s[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & dd)
			g = i
		case i < 32:
			f = (dd & b) | (^dd & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ dd
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^dd)
			g = (7 * i) % 16
		}
		f += a + md5T[i] + m[g]
		a, dd, c = dd, c, b
		b += bits.RotateLeft32(f, md5S[i])
	}

	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
}
