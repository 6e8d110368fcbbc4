package domain

import "time"

// AdminUser is an administrator account able to log in and manage the roster.
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
