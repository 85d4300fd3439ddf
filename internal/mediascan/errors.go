package mediascan

import "errors"

var (
	// ErrMissingArgument is returned when no path to scan was given.
	ErrMissingArgument = errors.New("please provide a directory or file path")
	// ErrNotFound is returned when the path to scan does not exist.
	ErrNotFound = errors.New("file path does not exist")
	// ErrInvalidInput is returned for manifests that are not .txt files and
	// for paths that are neither a directory nor a regular file.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFileOpen is returned when the report output file cannot be opened for appending.
	ErrFileOpen = errors.New("could not open file for writing")
	// ErrSizeQuery is returned when a collected file can no longer be measured.
	ErrSizeQuery = errors.New("querying file size")
)
