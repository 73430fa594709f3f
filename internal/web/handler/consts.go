package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a mounted route group.
	RouterRootPath = ""

	// APIPath is the prefix for all JSON API routes.
	APIPath = RootPath + "api"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
