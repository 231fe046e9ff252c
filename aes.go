package cryptokit

import (
	"encoding/binary"
)

// AES per FIPS 197. Only the forward cipher is implemented: CTR mode
// uses the same transform for both directions, so the inverse cipher
// never runs.

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// sbox is the FIPS 197 substitution table.
var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

// rcon holds the key-schedule round constants: 0x01 doubling in
// GF(2^8) each round.
var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// mul2 and mul3 are the GF(2^8) multiply tables used by MixColumns,
// filled once at startup and never mutated.
var mul2, mul3 [256]byte

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		d := b << 1
		if b&0x80 != 0 {
			d ^= 0x1b
		}
		mul2[i] = d
		mul3[i] = d ^ b
	}
}

// Cipher is an AES key schedule: Nr+1 round keys derived once from a
// 16-, 24- or 32-byte key and immutable thereafter.
type Cipher struct {
	rk     []uint32 // 4*(rounds+1) round-key words
	rounds int
}

// NewCipher expands key into a round-key schedule. The key must be
// exactly 16, 24 or 32 bytes (AES-128, AES-192 or AES-256).
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}

	nk := len(key) / 4
	rounds := nk + 6
	rk := make([]uint32, 4*(rounds+1))

	for i := 0; i < nk; i++ {
		rk[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := nk; i < len(rk); i++ {
		t := rk[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ uint32(rcon[i/nk-1])<<24
		case nk == 8 && i%8 == 4:
			// AES-256 applies a plain SubWord mid-key, with no
			// rotate or round constant.
			t = subWord(t)
		}
		rk[i] = rk[i-nk] ^ t
	}

	return &Cipher{rk: rk, rounds: rounds}, nil
}

// Rounds returns the number of cipher rounds (10, 12 or 14).
func (c *Cipher) Rounds() int { return c.rounds }

// BlockSize returns the AES block size.
func (c *Cipher) BlockSize() int { return BlockSize }

func rotWord(w uint32) uint32 { return w<<8 | w>>24 }

func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

// EncryptBlock encrypts exactly one 16-byte block from src into dst.
// dst and src may overlap. Panics if either is shorter than 16 bytes.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("cryptokit: aes input not a full block")
	}
	if len(dst) < BlockSize {
		panic("cryptokit: aes output not a full block")
	}

	// State bytes are column-major: s[4*col+row], matching the
	// big-endian word layout of the round keys.
	var s [16]byte
	copy(s[:], src[:BlockSize])

	addRoundKey(&s, c.rk[0:4])
	for round := 1; round < c.rounds; round++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, c.rk[4*round:4*round+4])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, c.rk[4*c.rounds:4*c.rounds+4])

	copy(dst[:BlockSize], s[:])
}

func addRoundKey(s *[16]byte, rk []uint32) {
	for col := 0; col < 4; col++ {
		w := rk[col]
		s[4*col+0] ^= byte(w >> 24)
		s[4*col+1] ^= byte(w >> 16)
		s[4*col+2] ^= byte(w >> 8)
		s[4*col+3] ^= byte(w)
	}
}

func subBytes(s *[16]byte) {
	for i, v := range s {
		s[i] = sbox[v]
	}
}

// shiftRows rotates row r of the state left by r positions.
func shiftRows(s *[16]byte) {
	t := *s
	for row := 1; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[4*col+row] = t[4*((col+row)%4)+row]
		}
	}
}

// mixColumns multiplies each column by the fixed {2,3,1,1} circulant
// matrix over GF(2^8).
func mixColumns(s *[16]byte) {
	for col := 0; col < 4; col++ {
		a0, a1, a2, a3 := s[4*col], s[4*col+1], s[4*col+2], s[4*col+3]
		s[4*col+0] = mul2[a0] ^ mul3[a1] ^ a2 ^ a3
		s[4*col+1] = a0 ^ mul2[a1] ^ mul3[a2] ^ a3
		s[4*col+2] = a0 ^ a1 ^ mul2[a2] ^ mul3[a3]
		s[4*col+3] = mul3[a0] ^ a1 ^ a2 ^ mul2[a3]
	}
}
