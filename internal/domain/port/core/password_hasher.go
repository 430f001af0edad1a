package core

// PasswordHasher is a one-way hash and compare service. The hashing
// algorithm is an implementation detail of the adapter; the domain only
// sees opaque hashes.
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password
	Hash(password string) (string, error)
	// Compare checks a plaintext password against a stored hash.
	// A non-nil error means the password does not match.
	Compare(hashedPassword, password string) error
}
