package utils

import "time"

const (
	// AuthCachePrefix prefixes auth-token hash keys in the auth cache DB.
	AuthCachePrefix = "auth:"

	// AuthTokenTTL is how long an issued session token stays valid.
	AuthTokenTTL = 72 * time.Hour
)
