package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// User is an authenticated account tied to one employee. The center and
// group locate the weekly schedule that applies when no roster cell exists.
type User struct {
	ID           string
	EmployeeCode string
	FullName     string
	PasswordHash string
	CenterID     string
	GroupCode    string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
