package model

import "time"

// User is an administrator account.  There is no self-service signup;
// admin rows are seeded directly into the database.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – login email, unique.
//  PasswordHash – bcrypt hash of the password.
//  Role         – always ADMIN today; kept as a column for future roles.
//  CreatedAt    – creation timestamp.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}

// RoleAdmin is the role claim required by every /v1/admin route.
const RoleAdmin = "ADMIN"
