// Package models contains the GORM tables behind the domain entities.
// Models stay out of the domain packages so storage tags and nullable
// columns never leak into business code.
package models
