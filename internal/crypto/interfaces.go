package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes that are safe
// to persist, and checks plaintext candidates against stored hashes.
//
// The encoded hash is self-describing: it carries the algorithm parameters
// and the salt, so Compare needs nothing but the stored string.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash,
	// ErrPasswordMismatch when it does not, and another error when hash
	// cannot be decoded.
	Compare(hash, password string) error
}
