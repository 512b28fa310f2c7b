package entity

type UserRole string

const (
	RoleResident UserRole = "resident"
	RoleAdmin    UserRole = "admin"
)

type UserProfile struct {
	Base
	Name          string   `db:"name"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	Phone         *string  `db:"phone"`
	UnitNumber    *string  `db:"unit_number"`
	CommunityCode string   `db:"community_code"`
	Role          UserRole `db:"role"`
	IsActive      bool     `db:"is_active"`
}
