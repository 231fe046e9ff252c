package cryptokit

// CTR mode per NIST SP 800-38A. The 16-byte IV is the initial counter
// value; each keystream block is the encryption of the current counter,
// and the counter increments as a 128-bit big-endian integer with full
// wraparound. Encryption and decryption are the same operation.
//
// The mode provides confidentiality only. Nothing here detects
// tampering; callers needing integrity must layer a MAC on top.

// Stream is an AES-CTR keystream applied by XOR. It caches one
// keystream block and a consumption offset, so inputs of any length
// and alignment are handled exactly.
type Stream struct {
	cipher    *Cipher
	counter   [BlockSize]byte
	keystream [BlockSize]byte
	used      int // consumed bytes of the cached keystream block
}

// NewCTR returns a CTR stream over key with iv as the initial counter.
// The key must be 16, 24 or 32 bytes and the iv exactly 16.
func NewCTR(key, iv []byte) (*Stream, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, IVSizeError(len(iv))
	}
	s := &Stream{cipher: c, used: BlockSize}
	copy(s.counter[:], iv)
	return s, nil
}

// XORKeyStream XORs src against the keystream into dst. dst must be
// at least as long as src; dst and src may be the same slice.
// Successive calls continue the stream where the previous call left
// off, whatever the chunking.
func (s *Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("cryptokit: ctr output shorter than input")
	}
	for i := range src {
		if s.used == BlockSize {
			s.refill()
		}
		dst[i] = src[i] ^ s.keystream[s.used]
		s.used++
	}
}

// refill encrypts the current counter into the keystream cache and
// advances the counter, carrying byte-by-byte from the last byte
// backward. An all-0xFF counter wraps to all zero.
func (s *Stream) refill() {
	s.cipher.EncryptBlock(s.keystream[:], s.counter[:])
	for i := BlockSize - 1; i >= 0; i-- {
		s.counter[i]++
		if s.counter[i] != 0 {
			break
		}
	}
	s.used = 0
}

// Encrypt returns src XORed with the keystream as a new slice.
func (s *Stream) Encrypt(src []byte) []byte {
	dst := make([]byte, len(src))
	s.XORKeyStream(dst, src)
	return dst
}

// Decrypt is the identical operation to Encrypt, named for callers
// that care about direction.
func (s *Stream) Decrypt(src []byte) []byte {
	return s.Encrypt(src)
}

// EncryptCTR encrypts data in one shot with a fresh stream.
func EncryptCTR(key, iv, data []byte) ([]byte, error) {
	s, err := NewCTR(key, iv)
	if err != nil {
		return nil, err
	}
	return s.Encrypt(data), nil
}

// DecryptCTR decrypts data in one shot with a fresh stream. CTR is
// symmetric, so this is EncryptCTR under another name.
func DecryptCTR(key, iv, data []byte) ([]byte, error) {
	return EncryptCTR(key, iv, data)
}
