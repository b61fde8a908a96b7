package common

// Application name constants
const (
	// AppName is the main application name
	AppName = "durflex"

	// EnvPrefix prefixes all environment variables read by the application
	EnvPrefix = "DURFLEX_"
)
