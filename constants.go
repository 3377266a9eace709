package main

// Route constants
const (
	RouteHome   = "/"
	RouteSolve  = "/solve"
	RouteHealth = "/healthz"
)

// Response status constants
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error message constants
const (
	ErrorMissingInput = "Provide pool (7 letters) and center letter."
	ErrorBadRequest   = "Request body must be JSON with pool, center and useCurated fields."
	ErrorNoMatches    = "No matching words found."
)

// Default configuration values, overridable via environment variables.
const (
	DefaultCuratedGlob    = "data/wordlists/*.txt"
	DefaultCorpusCacheDir = "data/cache"
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
