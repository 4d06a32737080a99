// Package common contains shared constants and sentinel errors used across
// GadgetKeeper components.
package common

// AccessTokenCookieName is the cookie carrying the session credential.
const AccessTokenCookieName = "token"

// AuthorizationHeaderName and BearerPrefix describe the header form of the
// session credential, used by non-browser clients.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
)
