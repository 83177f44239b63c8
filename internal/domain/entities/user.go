package entities

// Role grants access to one area of the back office.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RolePurchasing Role = "PURCHASING"
	RoleFinance    Role = "FINANCE"
	RoleLogistics  Role = "LOGISTICS"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePurchasing, RoleFinance, RoleLogistics:
		return true
	}
	return false
}

// User is an operator account.
//
// PasswordHash holds a bcrypt hash; the plain password is never stored.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Roles        []Role `json:"roles"`
}

func (u User) HasRole(role Role) bool {
	return hasRole(u.Roles, role)
}

// Session is the identity carried by an access token.
type Session struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Roles    []Role `json:"roles"`
}
