package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only accepted authorization scheme.
const BearerScheme = "Bearer"

// Roles a user can hold. A user without an explicit role is a guest.
const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)
