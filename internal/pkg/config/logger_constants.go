package config

// Supported log levels.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Supported log sinks.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)
