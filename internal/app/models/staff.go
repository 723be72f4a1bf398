package models

import "time"

// Staff defines a staff account based on the 'staff' table. Accounts are
// immutable after registration and are never deleted.
type Staff struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // excluded from JSON
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
