package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to clear plaintext passwords from memory after hashing or
// verification. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
