package entity

type UserRole string

const (
	RoleUnassigned     UserRole = "UNASSIGNED"
	RoleUser           UserRole = "USER"
	RoleSuperAdmin     UserRole = "SUPER_ADMIN"
	RoleHallManager    UserRole = "HALL_MANAGER"
	RoleMoviesManager  UserRole = "MOVIES_MANAGER"
	RoleTicketsManager UserRole = "TICKETS_MANAGER"
	RoleSnacksManager  UserRole = "SNACKS_MANAGER"
	RoleEmployee       UserRole = "EMPLOYEE"
)

// AssignableRoles is the set a super admin may hand to an UNASSIGNED
// employee. USER and SUPER_ADMIN are never assigned through this workflow.
var AssignableRoles = map[UserRole]bool{
	RoleHallManager:    true,
	RoleMoviesManager:  true,
	RoleTicketsManager: true,
	RoleSnacksManager:  true,
	RoleEmployee:       true,
}

type User struct {
	Base
	Username      string   `db:"username"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	Role          UserRole `db:"role"`
	EmailVerified bool     `db:"email_verified"`
}
