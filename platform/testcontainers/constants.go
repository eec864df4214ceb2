package testcontainers

// Environment keys the e2e suite reads to override container settings.
const (
	PostgresImageNameKey = "POSTGRES_IMAGE_NAME"
	PostgresDatabaseKey  = "POSTGRES_DB"
	PostgresUsernameKey  = "POSTGRES_USER"
	PostgresPasswordKey  = "POSTGRES_PASSWORD" //nolint:gosec

	MongoImageNameKey = "MONGO_IMAGE_NAME"
	MongoDatabaseKey  = "MONGO_DATABASE"
	MongoUsernameKey  = "MONGO_INITDB_ROOT_USERNAME"
	MongoPasswordKey  = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
	MongoAuthDBKey    = "MONGO_AUTH_DB"
)
