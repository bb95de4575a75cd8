package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers
const (
	IdentityProviderLocal    = "local"
	IdentityProviderFirebase = "firebase"
)

// Remote store drivers
const (
	RemoteDriverMem       = "mem"
	RemoteDriverFirestore = "firestore"
)

// Remote collections
const (
	CollectionUsers            = "users"
	CollectionGroups           = "groups"
	CollectionMembers          = "members"
	CollectionBreakInvitations = "break_invitations"
)
