// Package constants holds provider identifiers shared between config and infra.
package constants

// Pub/Sub provider types for catalog event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Media provider types for image uploads.
const (
	MediaProviderCloudinary = "cloudinary"
	MediaProviderBucket     = "bucket"
)
