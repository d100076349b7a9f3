package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Push event transport providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Search modes accepted by the offer search endpoint
const (
	SearchModeNearby = "nearby"
	SearchModeAll    = "all"
)

// Firebase limits multicast messages to 500 tokens
const FirebaseBatchSize = 500

// DefaultPushQueue is the RabbitMQ queue push events are routed to when none is configured
const DefaultPushQueue = "rescue.push"
