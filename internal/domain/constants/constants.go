// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
