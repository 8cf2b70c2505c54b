// Package middleware holds the gin middleware shared by the JSON API and the HTML pages:
// session resolution and role guards, request logging and language selection.
package middleware
