package domain

import "time"

// Department is a named grouping that employees may optionally belong to.
// Departments are never edited in place; only created and deleted.
type Department struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
