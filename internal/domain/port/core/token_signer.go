package core

// AccessTokenClaims is the identity payload carried by a signed access token
type AccessTokenClaims struct {
	// Subject is the user's login email
	Subject string
	// UserID is the numeric user id claim
	UserID uint64
	// Role is the authorization role claim
	Role string
}

// TokenSigner issues and validates signed access tokens. Implementations
// sign with a symmetric key injected at construction; there is no
// package-level key material.
type TokenSigner interface {
	// Generate produces a signed access token for the given identity
	Generate(userID uint64, email string, role string) (string, error)
	// Subject verifies the token signature and returns its subject claim
	Subject(tokenString string) (string, error)
	// Validate verifies signature and expiry and confirms the token's
	// subject matches the presented identity. Any mismatch yields
	// ErrInvalidAccessToken; a token is never partially trusted.
	Validate(tokenString string, subject string) (*AccessTokenClaims, error)
}
