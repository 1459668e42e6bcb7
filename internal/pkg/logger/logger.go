package logger

// Logger is the leveled logging contract injected into every component.
// Implementations format their arguments with fmt.Sprint semantics.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	// Fatal logs at error level and terminates the process.
	Fatal(args ...interface{})
	// Panic logs at error level and panics with the formatted message.
	Panic(args ...interface{})
}
