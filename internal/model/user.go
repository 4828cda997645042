package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column. The json tags
// are omitted here because these structs are used internally by the
// repository layer; handlers define separate response types with
// appropriate JSON tags.
//
// Fields:
//  ID        – primary key identifier of the user.
//  Email     – unique email address.
//  Password  – password exactly as supplied at registration.
//  CreatedAt – timestamp of creation.
//
// Passwords are stored verbatim and matched exactly on login. This is
// a known hardening gap inherited from the system this service
// replaces; a one-way hash must land here before production use.
type User struct {
	ID        uint64    // users.id
	Email     string    // users.email
	Password  string    // users.password
	CreatedAt time.Time // users.created_at
}
