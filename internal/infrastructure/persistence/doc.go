// Package persistence provides the GORM repositories behind the domain contracts.
// Repositories validate entities before writing, translate driver errors into
// coded errors (not found, conflict) and log every mutation.
package persistence
