// Package entity contains the core business objects of the project.
package entity

// Role identifies the authorization level of an account.
type Role string

const (
	// RoleAdmin can manage rooms, registrations, payments and checkouts.
	RoleAdmin Role = "admin"

	// RoleResident is a regular hostel resident.
	RoleResident Role = "resident"
)

// String returns the role as a plain string for token claims.
func (r Role) String() string {
	return string(r)
}
