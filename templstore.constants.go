package templstore

import "time"

// Store driver names for the driver registry
const (
	StoreDriverNameFile     = "file"
	StoreDriverNameMemory   = "memory"
	StoreDriverNameNull     = "null"
	StoreDriverNamePostgres = "postgres"
)

// Postgres defaults
const (
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
	PostgresTablePrefix            = "templstore_"
)

// Log message constants
const (
	LogMsgRefreshed       = "templates refreshed"
	LogMsgRefreshFailed   = "cannot refresh templates"
	LogMsgPartialAbsorbed = "partial store failed - continuing with default only"
	LogMsgMergedStores    = "merged partial entries over default"
)

// Log field names
const (
	LogFieldNamespace  = "namespace"
	LogFieldName       = "name"
	LogFieldNamespaces = "namespaces"
	LogFieldDefaults   = "default_entries"
	LogFieldPartials   = "partial_entries"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind   = "kind"
	MetaKeyPath   = "path"
	MetaKeyFormat = "format"
	MetaKeyDriver = "driver"
	MetaKeyVar    = "variable"
)
