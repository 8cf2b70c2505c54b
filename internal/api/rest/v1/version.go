package v1

// Route groups of the JSON API.
const (
	AuthPath   = "/api/auth"
	AdminPath  = "/api/admin"
	PublicPath = "/api/public"
)
