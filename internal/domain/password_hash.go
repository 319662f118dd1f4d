package domain

// PasswordHash is the opaque salted hash produced by the credential
// service. This is what entities persist; equality is byte-equality of
// the stored hash, never of a plaintext password.
type PasswordHash struct {
	value string
}

// NewPasswordHash wraps an already-computed hash string.
func NewPasswordHash(value string) PasswordHash {
	return PasswordHash{value: value}
}

// Value returns the encoded hash for verification and storage.
func (h PasswordHash) Value() string {
	return h.value
}
