// Package accounts holds portal users, their roles and the role hierarchy used to gate dashboard access.
package accounts
