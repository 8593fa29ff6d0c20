package unit

import "time"

// Unit is an organizational unit. ParentID builds the hierarchy tree;
// top-level commands have none.
type Unit struct {
	ID        string
	ParentID  *string
	Code      string
	NameFr    string
	NameAr    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
