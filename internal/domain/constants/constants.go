// Package constants holds identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Echo context keys.
const (
	ContextKeyIdentity = "identity"
)
