package user

import "time"

type Role string

const (
	RoleAdmin      Role = "ADMIN"      // Full access
	RoleSupervisor Role = "PEMBIMBING" // Internship supervisor
	RoleIntern     Role = "MAHASISWA"  // Intern (student)
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type User struct {
	ID           string
	Badge        string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Status       Status
	University   *string
	Department   *string
	SupervisorID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive checks if the account may sign in
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
