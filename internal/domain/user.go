package domain

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is an already-resolved actor identity from the mock identity
// provider. Employee users carry the employee id their schedule row is
// keyed by; admin users have no schedule of their own.
type User struct {
	ID               int     `json:"id"`
	Username         string  `json:"-"`
	Name             string  `json:"name"`
	PasswordHash     string  `json:"-"`
	Role             string  `json:"role"`
	EmployeeID       *int    `json:"employee_id,omitempty"`
	DefaultShiftCode *string `json:"default_shift_code,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
