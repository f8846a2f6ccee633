package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing data source, invalid paths)
	ExitDataError   = 3 // Data error (missing or malformed document)
	ExitCheckFailed = 4 // check found broken references
)
