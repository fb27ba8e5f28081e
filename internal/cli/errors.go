// Package cli implements the memo and sqlite2csv command-line interfaces.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrConfigInvalid = "CONFIG_INVALID"
	ErrConfigExists  = "CONFIG_EXISTS"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Database errors
	ErrDatabaseError    = "DATABASE_ERROR"
	ErrDatabaseNotFound = "DATABASE_NOT_FOUND"
	ErrTableNotFound    = "TABLE_NOT_FOUND"
	ErrTableEmpty       = "TABLE_EMPTY"
	ErrNoTextColumns    = "NO_TEXT_COLUMNS"
	ErrNoTables         = "NO_TABLES"

	// Encoding errors
	ErrInvalidEncoding = "INVALID_ENCODING"
	ErrUnconvertible   = "UNCONVERTIBLE_CHARACTERS"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"
	ErrUnknownCommand  = "UNKNOWN_COMMAND"
)
