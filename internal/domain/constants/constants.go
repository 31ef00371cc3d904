// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal routes events through the local HTTP publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
