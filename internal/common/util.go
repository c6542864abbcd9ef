package common

// WipeByteArray overwrites the buffer with zeros. Used to drop plaintext
// passwords from memory as soon as they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
