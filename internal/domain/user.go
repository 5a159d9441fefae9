package domain

import "time"

// Role distinguishes helpdesk administrators from department accounts.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDepartment Role = "department"
)

// User is an account from the static roster. Immutable after load; the
// roster's password never appears on this type.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Role           Role      `json:"role"`
	DepartmentName string    `json:"department_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// Department is the public projection of a department-role roster entry.
type Department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
