// Package entities contains core business entities.
package entities

// AuthSession is the current authenticated user, or none.
type AuthSession struct {
	User            *User
	IsAuthenticated bool
}
