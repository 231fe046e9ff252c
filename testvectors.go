package cryptokit

// DigestVector is a single known-answer test case for the hash suite.
// The vectors come from RFC 1321 and FIPS 180-4 and are replayed by
// the package tests to validate byte-for-byte agreement with the
// published algorithms. Exported for external validation tools.
type DigestVector struct {
	Name      string
	Algorithm HashAlgorithm
	Input     string // UTF-8 message
	Expected  string // lowercase hex digest
}

// DigestVectors returns the reference digest vectors.
func DigestVectors() []DigestVector {
	return []DigestVector{
		{"md5 empty", MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"md5 a", MD5, "a", "0cc175b9c0f1b6a831c399e269772661"},
		{"md5 abc", MD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"md5 message digest", MD5, "message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
		{"md5 alphabet", MD5, "abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
		{"md5 alnum", MD5, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
			"d174ab98d277d9f5a5611c2c9f419d9f"},
		{"md5 eighty digits", MD5,
			"12345678901234567890123456789012345678901234567890123456789012345678901234567890",
			"57edf4a22be3c955ac49da2e2107b67a"},

		{"sha1 empty", SHA1, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"sha1 abc", SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha1 two blocks", SHA1, "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"84983e441c3bd26ebaae4aa1f95129e5e54670f1"},

		{"sha256 empty", SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha256 abc", SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha256 two blocks", SHA256, "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	}
}
