// Package constants provides shared configuration values used across the icingcake application.
package constants

import "time"

// Configuration file defaults
const (
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "icingcake.yaml"

	// DefaultServerHost is the default host for the gateway server
	DefaultServerHost = "127.0.0.1"

	// DefaultServerPort is the default port for the gateway server
	DefaultServerPort = 8431
)

// Timeout and duration defaults
const (
	// DefaultIcingaTimeout is the default timeout for Icinga API requests
	DefaultIcingaTimeout = 30 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful shutdown
	DefaultShutdownTimeout = 10 * time.Second
)

// History configuration
const (
	// DefaultHistoryPath is the default location of the query history database
	DefaultHistoryPath = ".icingcake/history.db"

	// DefaultHistoryLimit is the default number of history entries to return
	DefaultHistoryLimit = 50
)
