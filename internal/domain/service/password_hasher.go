// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns a plaintext password into a stored digest and checks candidates against it.
type PasswordHasher interface {
	// Hash generates a digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest.
	Verify(password, digest string) bool
}
