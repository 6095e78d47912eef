package models

import "time"

// Account status values shared by users and businesses.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusApproved = "approved"
	StatusBlocked  = "blocked"
)

// Principal roles embedded in auth tokens.
const (
	RoleUser     = "user"
	RoleBusiness = "business"
)

// User represents a traveller account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	Status       string    `bson:"status" json:"status"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
