// Package constants holds shared domain constants.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// HousesCollection is the document-store collection holding house records.
	HousesCollection = "houses"
	// AdminRolesCollection holds one document per administrator, keyed by UID.
	AdminRolesCollection = "roles_admin"
)

const (
	// LastLocationKey is the key-value entry remembering the most recently
	// resolved map location.
	LastLocationKey = "lastHouseLocation"
	// DefaultZoom is the zoom level written alongside a remembered location.
	DefaultZoom = 13
)
