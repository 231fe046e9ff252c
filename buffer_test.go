package cryptokit

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestEncodingRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	encodings := []Encoding{Hex, Base64, Base64URL, Binary}

	for _, enc := range encodings {
		t.Run(enc.String(), func(t *testing.T) {
			for trial := 0; trial < 50; trial++ {
				raw := make([]byte, rng.Intn(100))
				rng.Read(raw)

				s, err := NewBufferFrom(raw).String(enc)
				if err != nil {
					t.Fatalf("encode: %v", err)
				}
				back, err := FromString(s, enc)
				if err != nil {
					t.Fatalf("decode %q: %v", s, err)
				}
				if !bytes.Equal(back.Bytes(), raw) {
					t.Fatalf("round trip mismatch: %x -> %q -> %x", raw, s, back.Bytes())
				}
			}
		})
	}
}

func TestEncodingUTF8(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", "日本語"} {
		b, err := FromString(s, UTF8)
		if err != nil {
			t.Fatal(err)
		}
		got, err := b.String(UTF8)
		if err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("utf8 round trip: got %q, want %q", got, s)
		}
	}
}

func TestHexDecoding(t *testing.T) {
	b, err := FromString("DeadBEEF", Hex)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("case-insensitive hex: got %x", b.Bytes())
	}
	s, _ := b.String(Hex)
	if s != "deadbeef" {
		t.Errorf("hex output not lowercase: %q", s)
	}

	if _, err := FromString("abc", Hex); err == nil {
		t.Error("odd-length hex accepted")
	}
	if _, err := FromString("zz", Hex); err == nil {
		t.Error("non-hex digit accepted")
	}
}

func TestBase64Alphabets(t *testing.T) {
	raw := []byte{0xfb, 0xff, 0x3e}

	std, _ := NewBufferFrom(raw).String(Base64)
	if std != "+/8+" {
		t.Errorf("base64: got %q, want %q", std, "+/8+")
	}

	url, _ := NewBufferFrom(raw).String(Base64URL)
	if url != "-_8-" {
		t.Errorf("base64url: got %q, want %q", url, "-_8-")
	}

	// Unpadded output, padded input accepted.
	one, _ := NewBufferFrom([]byte{0x01}).String(Base64URL)
	if one != "AQ" {
		t.Errorf("base64url padding not omitted: %q", one)
	}
	for _, in := range []string{"AQ", "AQ=="} {
		b, err := FromString(in, Base64URL)
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		if !bytes.Equal(b.Bytes(), []byte{0x01}) {
			t.Errorf("decode %q: got %x", in, b.Bytes())
		}
	}
}

func TestBinaryEncoding(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}
	s, err := NewBufferFrom(raw).String(Binary)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromString(s, Binary)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back.Bytes(), raw) {
		t.Fatalf("binary round trip mismatch")
	}

	// Code units above 0xFF keep only their low byte.
	b, err := FromString("Āӿ", Binary)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0x00, 0xff}) {
		t.Errorf("high code units: got %x", b.Bytes())
	}
}

func TestParseEncoding(t *testing.T) {
	for name, want := range map[string]Encoding{
		"utf8": UTF8, "hex": Hex, "base64": Base64,
		"base64url": Base64URL, "binary": Binary, "latin1": Binary,
	} {
		got, err := ParseEncoding(name)
		if err != nil || got != want {
			t.Errorf("ParseEncoding(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseEncoding("ebcdic"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("unknown encoding error = %v", err)
	}
}

func TestView(t *testing.T) {
	parent := NewBufferOf(0, 1, 2, 3, 4, 5, 6, 7)

	v, err := View(parent, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 4 || v.ReadUint8(0) != 2 {
		t.Fatalf("view content wrong: %x", v.Bytes())
	}

	// Mutations are visible through both handles.
	v.WriteUint8(0xaa, 1)
	if parent.ReadUint8(3) != 0xaa {
		t.Error("view write not visible through parent")
	}
	parent.WriteUint8(0xbb, 2)
	if v.ReadUint8(0) != 0xbb {
		t.Error("parent write not visible through view")
	}

	for _, bad := range [][2]int{{-1, 2}, {0, 9}, {7, 2}, {0, -1}} {
		if _, err := View(parent, bad[0], bad[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("View(%d, %d) error = %v", bad[0], bad[1], err)
		}
	}
}

func TestChainedWrites(t *testing.T) {
	b := NewBuffer(23)
	off := b.WriteUint8(0x01, 0)
	off = b.WriteUint16BE(0x0203, off)
	off = b.WriteUint32LE(0x07060504, off)
	off = b.WriteUint64BE(0x08090a0b0c0d0e0f, off)
	off = b.WriteInt64LE(-2, off)

	if off != 23 {
		t.Fatalf("final offset = %d, want 23", off)
	}
	want := []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("layout:\n got %x\nwant %x", b.Bytes(), want)
	}

	if b.ReadUint16BE(1) != 0x0203 {
		t.Error("ReadUint16BE")
	}
	if b.ReadUint32LE(3) != 0x07060504 {
		t.Error("ReadUint32LE")
	}
	if b.ReadUint64BE(7) != 0x08090a0b0c0d0e0f {
		t.Error("ReadUint64BE")
	}
	if b.ReadInt64LE(15) != -2 {
		t.Error("ReadInt64LE")
	}
}

func TestFloats(t *testing.T) {
	b := NewBuffer(24)
	off := b.WriteFloat32LE(math.Pi, 0)
	off = b.WriteFloat32BE(math.Pi, off)
	off = b.WriteFloat64LE(math.Pi, off)
	off = b.WriteFloat64BE(math.Pi, off)
	if off != 24 {
		t.Fatalf("offset = %d", off)
	}

	if b.ReadFloat32LE(0) != float32(math.Pi) || b.ReadFloat32BE(4) != float32(math.Pi) {
		t.Error("float32 round trip")
	}
	if b.ReadFloat64LE(8) != math.Pi || b.ReadFloat64BE(16) != math.Pi {
		t.Error("float64 round trip")
	}
}

func TestConcat(t *testing.T) {
	a := NewBufferOf(1, 2)
	b := NewBufferOf(3)
	c := NewBufferOf(4, 5, 6)

	all := Concat([]*Buffer{a, b, c})
	if !bytes.Equal(all.Bytes(), []byte{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("concat = %x", all.Bytes())
	}
	if all.Len() != a.Len()+b.Len()+c.Len() {
		t.Error("concat length != sum of inputs")
	}

	short := Concat([]*Buffer{a, b, c}, 4)
	if !bytes.Equal(short.Bytes(), []byte{1, 2, 3, 4}) {
		t.Fatalf("truncated concat = %x", short.Bytes())
	}

	// An explicit total beyond the inputs' sum zero-fills the tail.
	long := Concat([]*Buffer{a, b, c}, 8)
	if !bytes.Equal(long.Bytes(), []byte{1, 2, 3, 4, 5, 6, 0, 0}) {
		t.Fatalf("padded concat = %x", long.Bytes())
	}

	exact := Concat([]*Buffer{a, b, c}, 6)
	if !bytes.Equal(exact.Bytes(), []byte{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("exact-total concat = %x", exact.Bytes())
	}

	empty := Concat(nil)
	if empty.Len() != 0 {
		t.Error("concat of nothing not empty")
	}
}

func TestCompareAndEqual(t *testing.T) {
	ab := NewBufferOf('a', 'b')
	abc := NewBufferOf('a', 'b', 'c')
	abd := NewBufferOf('a', 'b', 'd')

	if ab.Compare(abc) != -1 || abc.Compare(ab) != 1 {
		t.Error("prefix ordering")
	}
	if abc.Compare(abd) != -1 {
		t.Error("lexicographic ordering")
	}
	if abc.Compare(abc.Clone()) != 0 || !abc.Equal(abc.Clone()) {
		t.Error("equality")
	}
	if ab.Equal(abc) {
		t.Error("unequal lengths reported equal")
	}
}

func TestSearch(t *testing.T) {
	b := NewBufferOf(1, 2, 3, 1, 2, 3)

	if got := b.IndexOfByte(2, 0); got != 1 {
		t.Errorf("IndexOfByte = %d", got)
	}
	if got := b.IndexOfByte(2, 2); got != 4 {
		t.Errorf("IndexOfByte from 2 = %d", got)
	}
	if got := b.IndexOfByte(9, 0); got != -1 {
		t.Errorf("missing byte = %d", got)
	}

	sub := NewBufferOf(2, 3)
	if got := b.Index(sub, 0); got != 1 {
		t.Errorf("Index = %d", got)
	}
	if got := b.Index(sub, 3); got != 4 {
		t.Errorf("Index from 3 = %d", got)
	}
	if !b.Contains(sub, 0) || b.Contains(NewBufferOf(3, 1, 1), 0) {
		t.Error("Contains")
	}
}

func TestSwaps(t *testing.T) {
	b := NewBufferOf(1, 2, 3, 4, 5, 6, 7, 8)
	if err := b.Swap16(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{2, 1, 4, 3, 6, 5, 8, 7}) {
		t.Errorf("swap16 = %x", b.Bytes())
	}

	b = NewBufferOf(1, 2, 3, 4, 5, 6, 7, 8)
	if err := b.Swap32(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{4, 3, 2, 1, 8, 7, 6, 5}) {
		t.Errorf("swap32 = %x", b.Bytes())
	}

	b = NewBufferOf(1, 2, 3, 4, 5, 6, 7, 8)
	if err := b.Swap64(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{8, 7, 6, 5, 4, 3, 2, 1}) {
		t.Errorf("swap64 = %x", b.Bytes())
	}

	if err := NewBuffer(3).Swap16(); err == nil {
		t.Error("swap16 on odd length accepted")
	}
	if err := NewBuffer(6).Swap32(); err == nil {
		t.Error("swap32 on misaligned length accepted")
	}
}

func TestFill(t *testing.T) {
	b := NewBuffer(4)
	b.Fill(0x5c)
	if !bytes.Equal(b.Bytes(), []byte{0x5c, 0x5c, 0x5c, 0x5c}) {
		t.Errorf("fill = %x", b.Bytes())
	}
}

func TestBigIntSerialization(t *testing.T) {
	cases := []struct {
		value int64
		bytes []byte
	}{
		{0, []byte{}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x00}},
		{255, []byte{0xff, 0x00}},
		{256, []byte{0x00, 0x01}},
		{32767, []byte{0xff, 0x7f}},
		{32768, []byte{0x00, 0x80, 0x00}},
		{-1, []byte{0xff}},
		{-128, []byte{0x80}},
		{-129, []byte{0x7f, 0xff}},
		{-255, []byte{0x01, 0xff}},
		{-256, []byte{0x00, 0xff}},
		{-32768, []byte{0x00, 0x80}},
		{-32769, []byte{0xff, 0x7f, 0xff}},
	}
	for _, tc := range cases {
		got := FromBigInt(BigIntFromInt64(tc.value))
		if !bytes.Equal(got.Bytes(), tc.bytes) {
			t.Errorf("FromBigInt(%d) = %x, want %x", tc.value, got.Bytes(), tc.bytes)
		}
		back := got.BigInt()
		if back.Int64() != tc.value {
			t.Errorf("BigInt(%x) = %s, want %d", tc.bytes, back, tc.value)
		}
	}
}

func TestBigIntSerializationRoundTrip(t *testing.T) {
	check := func(v *BigInt) {
		back := FromBigInt(v).BigInt()
		if !back.Equal(v) {
			t.Errorf("round trip %s -> %s", v, back)
		}
	}
	for i := int64(-1100); i <= 1100; i++ {
		check(BigIntFromInt64(i))
	}
	one := BigIntFromInt64(1)
	for k := uint(1); k <= 96; k++ {
		p := BigIntFromInt64(1).Lsh(k) // 2^k
		for _, v := range []*BigInt{p, p.Add(one), p.Sub(one), p.Neg(), p.Neg().Add(one), p.Neg().Sub(one)} {
			check(v)
		}
	}
}
