package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// LogFile mirrors log records into a file next to the console output.
type LogFile interface {
	// OpenLogFile starts appending records to path. A previously opened file is closed.
	OpenLogFile(path string) error
	// CloseLogFile stops mirroring. It is a no-op when no file is open.
	CloseLogFile() error
}
