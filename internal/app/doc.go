// Package app implements the domain services on top of the repositories, connectors and security adapters.
package app
