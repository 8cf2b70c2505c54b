// Package security implements password hashing, session tokens and the login limiter backends.
package security
