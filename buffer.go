package cryptokit

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"unicode/utf16"
)

// Encoding identifies a textual rendering of raw bytes.
type Encoding int

const (
	// UTF8 is standard variable-width UTF-8.
	UTF8 Encoding = iota

	// Hex is two lowercase hex digits per byte. Input is
	// case-insensitive; odd-length or non-digit input is rejected.
	Hex

	// Base64 is RFC 4648 section 4: the +/ alphabet with = padding.
	Base64

	// Base64URL is RFC 4648 section 5: the -_ alphabet, unpadded on
	// output, padding-tolerant on input.
	Base64URL

	// Binary maps each UTF-16 code unit of the string to its low
	// byte (the latin1 passthrough encoding).
	Binary
)

// String returns the canonical name of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	case Base64URL:
		return "base64url"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding maps an encoding name to its Encoding value. The
// "latin1" alias is accepted for Binary.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return UTF8, nil
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	case "base64url":
		return Base64URL, nil
	case "binary", "latin1":
		return Binary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// Buffer is a fixed-length mutable byte sequence. Owning constructors
// allocate fresh storage; View shares storage with an existing buffer,
// so mutations are visible through both handles.
//
// The fixed-width accessors index the underlying storage directly and
// panic on out-of-range offsets, the same way raw slice indexing does.
type Buffer struct {
	data []byte
}

// NewBuffer returns a buffer of n zero bytes.
func NewBuffer(n int) *Buffer {
	return &Buffer{data: make([]byte, n)}
}

// NewBufferFrom returns a buffer owning a copy of b.
func NewBufferFrom(b []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), b...)}
}

// NewBufferOf returns a buffer with one byte per value, each value
// truncated to its low 8 bits.
func NewBufferOf(vals ...int) *Buffer {
	data := make([]byte, len(vals))
	for i, v := range vals {
		data[i] = byte(v)
	}
	return &Buffer{data: data}
}

// View returns a buffer sharing parent's storage from offset for
// length bytes. The two handles alias: writes through either are seen
// by both.
func View(parent *Buffer, offset, length int) (*Buffer, error) {
	if offset < 0 || length < 0 || offset+length > len(parent.data) {
		return nil, fmt.Errorf("%w: view [%d:%d) of %d-byte buffer",
			ErrOutOfRange, offset, offset+length, len(parent.data))
	}
	sub := parent.data[offset : offset+length : offset+length]
	return &Buffer{data: sub}, nil
}

// FromString decodes s with the given encoding.
func FromString(s string, enc Encoding) (*Buffer, error) {
	switch enc {
	case UTF8:
		return &Buffer{data: []byte(s)}, nil
	case Hex:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("cryptokit: invalid hex input: %w", err)
		}
		return &Buffer{data: b}, nil
	case Base64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("cryptokit: invalid base64 input: %w", err)
		}
		return &Buffer{data: b}, nil
	case Base64URL:
		b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
		if err != nil {
			return nil, fmt.Errorf("cryptokit: invalid base64url input: %w", err)
		}
		return &Buffer{data: b}, nil
	case Binary:
		units := utf16.Encode([]rune(s))
		b := make([]byte, len(units))
		for i, u := range units {
			b[i] = byte(u)
		}
		return &Buffer{data: b}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, enc)
	}
}

// String renders the buffer with the given encoding. Each encoding is
// the exact inverse of FromString.
func (b *Buffer) String(enc Encoding) (string, error) {
	switch enc {
	case UTF8:
		return string(b.data), nil
	case Hex:
		return hex.EncodeToString(b.data), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b.data), nil
	case Base64URL:
		return base64.RawURLEncoding.EncodeToString(b.data), nil
	case Binary:
		runes := make([]rune, len(b.data))
		for i, v := range b.data {
			runes[i] = rune(v)
		}
		return string(runes), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, enc)
	}
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the live backing slice. Mutating it mutates the
// buffer (and any views sharing its storage).
func (b *Buffer) Bytes() []byte { return b.data }

// Clone returns an owning copy.
func (b *Buffer) Clone() *Buffer { return NewBufferFrom(b.data) }

// Fill sets every byte to v.
func (b *Buffer) Fill(v byte) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Concat copies bufs in order into one new buffer. With no explicit
// total the result length is the sum of the inputs. An explicit total
// fixes the result length either way: a smaller one drops trailing
// input bytes once the budget is spent, a larger one leaves the tail
// zero-filled.
func Concat(bufs []*Buffer, totalLength ...int) *Buffer {
	total := 0
	for _, b := range bufs {
		total += len(b.data)
	}
	if len(totalLength) > 0 {
		total = totalLength[0]
	}
	out := make([]byte, total)
	n := 0
	for _, b := range bufs {
		if n >= total {
			break
		}
		n += copy(out[n:], b.data)
	}
	return &Buffer{data: out}
}

// Compare orders buffers byte-wise, then by length when one is a
// prefix of the other. Returns -1, 0 or 1.
func (b *Buffer) Compare(other *Buffer) int {
	return bytes.Compare(b.data, other.data)
}

// Equal reports whether both buffers hold the same bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(b.data, other.data)
}

// IndexOfByte returns the index of the first occurrence of v at or
// after from, or -1.
func (b *Buffer) IndexOfByte(v byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(b.data) {
		return -1
	}
	i := bytes.IndexByte(b.data[from:], v)
	if i < 0 {
		return -1
	}
	return from + i
}

// Index returns the index of the first occurrence of sub at or after
// from, or -1.
func (b *Buffer) Index(sub *Buffer, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(b.data) {
		return -1
	}
	i := bytes.Index(b.data[from:], sub.data)
	if i < 0 {
		return -1
	}
	return from + i
}

// Contains reports whether sub occurs anywhere at or after from.
func (b *Buffer) Contains(sub *Buffer, from int) bool {
	return b.Index(sub, from) >= 0
}

// Swap16 reverses byte order within each 16-bit granule in place.
func (b *Buffer) Swap16() error { return b.swap(2) }

// Swap32 reverses byte order within each 32-bit granule in place.
func (b *Buffer) Swap32() error { return b.swap(4) }

// Swap64 reverses byte order within each 64-bit granule in place.
func (b *Buffer) Swap64() error { return b.swap(8) }

func (b *Buffer) swap(granule int) error {
	if len(b.data)%granule != 0 {
		return fmt.Errorf("%w: length %d not a multiple of %d",
			ErrOutOfRange, len(b.data), granule)
	}
	for i := 0; i < len(b.data); i += granule {
		for j, k := i, i+granule-1; j < k; j, k = j+1, k-1 {
			b.data[j], b.data[k] = b.data[k], b.data[j]
		}
	}
	return nil
}

// Fixed-width reads. 64-bit values are composed from two 32-bit reads.

func (b *Buffer) ReadUint8(off int) uint8 { return b.data[off] }
func (b *Buffer) ReadInt8(off int) int8   { return int8(b.data[off]) }

func (b *Buffer) ReadUint16LE(off int) uint16 { return binary.LittleEndian.Uint16(b.data[off:]) }
func (b *Buffer) ReadUint16BE(off int) uint16 { return binary.BigEndian.Uint16(b.data[off:]) }
func (b *Buffer) ReadInt16LE(off int) int16   { return int16(b.ReadUint16LE(off)) }
func (b *Buffer) ReadInt16BE(off int) int16   { return int16(b.ReadUint16BE(off)) }

func (b *Buffer) ReadUint32LE(off int) uint32 { return binary.LittleEndian.Uint32(b.data[off:]) }
func (b *Buffer) ReadUint32BE(off int) uint32 { return binary.BigEndian.Uint32(b.data[off:]) }
func (b *Buffer) ReadInt32LE(off int) int32   { return int32(b.ReadUint32LE(off)) }
func (b *Buffer) ReadInt32BE(off int) int32   { return int32(b.ReadUint32BE(off)) }

func (b *Buffer) ReadUint64LE(off int) uint64 {
	lo := uint64(b.ReadUint32LE(off))
	hi := uint64(b.ReadUint32LE(off + 4))
	return hi<<32 | lo
}

func (b *Buffer) ReadUint64BE(off int) uint64 {
	hi := uint64(b.ReadUint32BE(off))
	lo := uint64(b.ReadUint32BE(off + 4))
	return hi<<32 | lo
}

func (b *Buffer) ReadInt64LE(off int) int64 { return int64(b.ReadUint64LE(off)) }
func (b *Buffer) ReadInt64BE(off int) int64 { return int64(b.ReadUint64BE(off)) }

func (b *Buffer) ReadFloat32LE(off int) float32 { return math.Float32frombits(b.ReadUint32LE(off)) }
func (b *Buffer) ReadFloat32BE(off int) float32 { return math.Float32frombits(b.ReadUint32BE(off)) }
func (b *Buffer) ReadFloat64LE(off int) float64 { return math.Float64frombits(b.ReadUint64LE(off)) }
func (b *Buffer) ReadFloat64BE(off int) float64 { return math.Float64frombits(b.ReadUint64BE(off)) }

// Fixed-width writes. Each write returns the offset just past the
// written value so writes can be chained.

func (b *Buffer) WriteUint8(v uint8, off int) int {
	b.data[off] = v
	return off + 1
}

func (b *Buffer) WriteInt8(v int8, off int) int { return b.WriteUint8(uint8(v), off) }

func (b *Buffer) WriteUint16LE(v uint16, off int) int {
	binary.LittleEndian.PutUint16(b.data[off:], v)
	return off + 2
}

func (b *Buffer) WriteUint16BE(v uint16, off int) int {
	binary.BigEndian.PutUint16(b.data[off:], v)
	return off + 2
}

func (b *Buffer) WriteInt16LE(v int16, off int) int { return b.WriteUint16LE(uint16(v), off) }
func (b *Buffer) WriteInt16BE(v int16, off int) int { return b.WriteUint16BE(uint16(v), off) }

func (b *Buffer) WriteUint32LE(v uint32, off int) int {
	binary.LittleEndian.PutUint32(b.data[off:], v)
	return off + 4
}

func (b *Buffer) WriteUint32BE(v uint32, off int) int {
	binary.BigEndian.PutUint32(b.data[off:], v)
	return off + 4
}

func (b *Buffer) WriteInt32LE(v int32, off int) int { return b.WriteUint32LE(uint32(v), off) }
func (b *Buffer) WriteInt32BE(v int32, off int) int { return b.WriteUint32BE(uint32(v), off) }

func (b *Buffer) WriteUint64LE(v uint64, off int) int {
	off = b.WriteUint32LE(uint32(v), off)
	return b.WriteUint32LE(uint32(v>>32), off)
}

func (b *Buffer) WriteUint64BE(v uint64, off int) int {
	off = b.WriteUint32BE(uint32(v>>32), off)
	return b.WriteUint32BE(uint32(v), off)
}

func (b *Buffer) WriteInt64LE(v int64, off int) int { return b.WriteUint64LE(uint64(v), off) }
func (b *Buffer) WriteInt64BE(v int64, off int) int { return b.WriteUint64BE(uint64(v), off) }

func (b *Buffer) WriteFloat32LE(v float32, off int) int {
	return b.WriteUint32LE(math.Float32bits(v), off)
}

func (b *Buffer) WriteFloat32BE(v float32, off int) int {
	return b.WriteUint32BE(math.Float32bits(v), off)
}

func (b *Buffer) WriteFloat64LE(v float64, off int) int {
	return b.WriteUint64LE(math.Float64bits(v), off)
}

func (b *Buffer) WriteFloat64BE(v float64, off int) int {
	return b.WriteUint64BE(math.Float64bits(v), off)
}
