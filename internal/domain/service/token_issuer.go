package service

// TokenIssuer derives a bearer token from account identity material at signup or login.
type TokenIssuer interface {
	Issue(email, digest, name string) (string, error)
}

// TokenVerifier is implemented by issuers whose tokens carry a verifiable signature.
// Tokens failing verification are rejected before any session lookup.
type TokenVerifier interface {
	Verify(token string) error
}
