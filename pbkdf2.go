package cryptokit

import (
	"encoding/binary"
	"fmt"
)

// PBKDF2 derives keyLen bytes from password and salt per RFC 2898
// section 5.2, using HMAC over the given hash as the pseudorandom
// function.
//
// There is no internal ceiling on iterations or keyLen: a large
// iteration count blocks the caller for proportionally long, which is
// the point of the construction.
func PBKDF2(password, salt []byte, iterations, keyLen int, alg HashAlgorithm) ([]byte, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("cryptokit: pbkdf2 iterations must be >= 1, got %d", iterations)
	}
	if keyLen < 0 {
		return nil, fmt.Errorf("cryptokit: pbkdf2 key length must be >= 0, got %d", keyLen)
	}
	probe, err := NewHash(alg)
	if err != nil {
		return nil, err
	}
	hLen := probe.Size()

	numBlocks := (keyLen + hLen - 1) / hLen
	dk := make([]byte, 0, numBlocks*hLen)
	var blockIndex [4]byte

	for i := 1; i <= numBlocks; i++ {
		binary.BigEndian.PutUint32(blockIndex[:], uint32(i))

		// U1 = PRF(password, salt || BE32(i))
		mac, err := NewHMAC(alg, password)
		if err != nil {
			return nil, err
		}
		mac.Write(salt)
		mac.Write(blockIndex[:])
		u := mac.Sum()

		t := append([]byte(nil), u...)
		for j := 2; j <= iterations; j++ {
			mac, _ = NewHMAC(alg, password)
			mac.Write(u)
			u = mac.Sum()
			for k := range t {
				t[k] ^= u[k]
			}
		}
		dk = append(dk, t...)
	}
	return dk[:keyLen], nil
}
