// Package constants holds shared configuration constants.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Dispatch providers for accepted-tap events.
const (
	DispatchProviderInproc = "inproc"
	DispatchProviderLocal  = "local"
	DispatchProviderGoogle = "google"
)
