package main

// Build-time variables set via ldflags during releases.
var (
	version = "latest"  // application version shown by version command
	commit  = "unknown" // git commit hash
	date    = "unknown" // build date
)
