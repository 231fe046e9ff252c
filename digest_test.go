package cryptokit

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestDigestKnownAnswers(t *testing.T) {
	for _, tv := range DigestVectors() {
		t.Run(tv.Name, func(t *testing.T) {
			d, err := NewHash(tv.Algorithm)
			if err != nil {
				t.Fatal(err)
			}
			d.Write([]byte(tv.Input))
			got := hex.EncodeToString(d.Sum())
			if got != tv.Expected {
				t.Errorf("got %s, want %s", got, tv.Expected)
			}
		})
	}
}

func TestDigestSizes(t *testing.T) {
	sizes := map[HashAlgorithm]int{MD5: 16, SHA1: 20, SHA256: 32}
	for alg, want := range sizes {
		d, err := NewHash(alg)
		if err != nil {
			t.Fatal(err)
		}
		if d.Size() != want {
			t.Errorf("%s size = %d, want %d", alg, d.Size(), want)
		}
		if d.BlockSize() != 64 {
			t.Errorf("%s block size = %d, want 64", alg, d.BlockSize())
		}
		if d.Algorithm() != alg {
			t.Errorf("%s algorithm = %s", alg, d.Algorithm())
		}
		if got := len(d.Sum()); got != want {
			t.Errorf("%s sum length = %d, want %d", alg, got, want)
		}
	}
}

// Streaming must be chunking-independent: feeding a message in
// arbitrary pieces produces the same digest as one shot.
func TestDigestStreaming(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	msg := make([]byte, 1000)
	rng.Read(msg)

	for _, alg := range []HashAlgorithm{MD5, SHA1, SHA256} {
		t.Run(alg.String(), func(t *testing.T) {
			oneShot, _ := NewHash(alg)
			oneShot.Write(msg)
			want := oneShot.Sum()

			// Byte at a time.
			d, _ := NewHash(alg)
			for _, b := range msg {
				d.Write([]byte{b})
			}
			if !bytes.Equal(d.Sum(), want) {
				t.Error("byte-at-a-time digest differs")
			}

			// Random chunking.
			for trial := 0; trial < 20; trial++ {
				d, _ := NewHash(alg)
				rest := msg
				for len(rest) > 0 {
					n := rng.Intn(len(rest)) + 1
					d.Write(rest[:n])
					rest = rest[n:]
				}
				if !bytes.Equal(d.Sum(), want) {
					t.Fatal("chunked digest differs")
				}
			}
		})
	}
}

// The padding boundary cases live at message lengths around 55/56/64.
func TestDigestPaddingBoundaries(t *testing.T) {
	for _, alg := range []HashAlgorithm{MD5, SHA1, SHA256} {
		for _, n := range []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 119, 120, 128} {
			msg := []byte(strings.Repeat("a", n))
			one, _ := NewHash(alg)
			one.Write(msg)

			split, _ := NewHash(alg)
			split.Write(msg[:n/2])
			split.Write(msg[n/2:])

			if !bytes.Equal(one.Sum(), split.Sum()) {
				t.Errorf("%s length %d: split digest differs", alg, n)
			}
		}
	}
}

func TestDigestFinalizationLatch(t *testing.T) {
	d := NewSHA256()
	d.Write([]byte("abc"))
	first := d.Sum()

	if _, err := d.Write([]byte("more")); !errors.Is(err, ErrDigestFinalized) {
		t.Errorf("Write after Sum: err = %v", err)
	}

	second := d.Sum()
	if !bytes.Equal(first, second) {
		t.Error("repeated Sum changed")
	}

	// Sums are fresh copies: corrupting one must not leak into the next.
	second[0] ^= 0xff
	if !bytes.Equal(d.Sum(), first) {
		t.Error("Sum returned shared storage")
	}
}

func TestOneShotHelpers(t *testing.T) {
	if hex.EncodeToString(SumMD5([]byte("abc"))) != "900150983cd24fb0d6963f7d28e17f72" {
		t.Error("SumMD5")
	}
	if hex.EncodeToString(SumSHA1([]byte("abc"))) != "a9993e364706816aba3e25717850c26c9cd0d89d" {
		t.Error("SumSHA1")
	}
	if hex.EncodeToString(SumSHA256(nil)) != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Error("SumSHA256")
	}
}

func TestParseHashAlgorithm(t *testing.T) {
	for name, want := range map[string]HashAlgorithm{
		"md5": MD5, "sha1": SHA1, "SHA-256": SHA256,
	} {
		got, err := ParseHashAlgorithm(name)
		if err != nil || got != want {
			t.Errorf("ParseHashAlgorithm(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseHashAlgorithm("whirlpool"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("unknown algorithm error = %v", err)
	}
	if _, err := NewHash(HashAlgorithm(42)); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("NewHash(42) error = %v", err)
	}
}
