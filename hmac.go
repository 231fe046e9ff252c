package cryptokit

// HMAC per RFC 2104, generic over the digest suite. All three suite
// hashes share the 64-byte block size; keys longer than that are
// replaced by their hash before padding.
type HMAC struct {
	inner Digest
	outer Digest
	alg   HashAlgorithm
	sum   []byte // non-nil once finalized
}

const hmacBlockSize = digestBlockSize

// NewHMAC returns an HMAC keyed with key over the given hash.
func NewHMAC(alg HashAlgorithm, key []byte) (*HMAC, error) {
	inner, err := NewHash(alg)
	if err != nil {
		return nil, err
	}
	outer, _ := NewHash(alg)

	if len(key) > hmacBlockSize {
		d, _ := NewHash(alg)
		d.Write(key)
		key = d.Sum()
	}

	var ipad, opad [hmacBlockSize]byte
	copy(ipad[:], key)
	copy(opad[:], key)
	for i := range ipad {
		ipad[i] ^= 0x36
		opad[i] ^= 0x5c
	}

	inner.Write(ipad[:])
	outer.Write(opad[:])

	return &HMAC{inner: inner, outer: outer, alg: alg}, nil
}

// Write feeds data to the inner hash. Chunks may have any length.
func (h *HMAC) Write(p []byte) (int, error) {
	if h.sum != nil {
		return 0, ErrDigestFinalized
	}
	return h.inner.Write(p)
}

// Sum finalizes the MAC on first call and returns a fresh copy of the
// tag on every call. The tag is hash(opad || hash(ipad || data)).
func (h *HMAC) Sum() []byte {
	if h.sum == nil {
		h.outer.Write(h.inner.Sum())
		h.sum = h.outer.Sum()
	}
	return append([]byte(nil), h.sum...)
}

// Size returns the tag length, equal to the underlying hash's.
func (h *HMAC) Size() int { return h.inner.Size() }

// BlockSize returns the HMAC block size.
func (h *HMAC) BlockSize() int { return hmacBlockSize }

// Algorithm identifies the underlying hash.
func (h *HMAC) Algorithm() HashAlgorithm { return h.alg }

// SumHMAC computes an HMAC tag in one shot.
func SumHMAC(alg HashAlgorithm, key, data []byte) ([]byte, error) {
	m, err := NewHMAC(alg, key)
	if err != nil {
		return nil, err
	}
	m.Write(data)
	return m.Sum(), nil
}
