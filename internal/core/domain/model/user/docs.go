// Package user contains the User aggregate and the Actor types used for
// role-based access decisions.
package user
