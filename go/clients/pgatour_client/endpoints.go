package pgatour_client

const (
	// Headers
	UserAgentHeader = "User-Agent"
	AcceptHeader    = "Accept"
	UserAgent       = "fantasygolf-pga-sync/1.0"
)
