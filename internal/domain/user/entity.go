package user

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	Locale       Locale
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

type Locale string

const (
	LocaleFrench Locale = "fr"
	LocaleArabic Locale = "ar"
)
