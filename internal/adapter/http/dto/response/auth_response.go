package response

import "mercado_erp/internal/domain/entities"

type SessionResponse struct {
	UserID   string   `json:"user_id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Views    []string `json:"views"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// FromSession lists the views the session may open, in menu order.
func FromSession(s entities.Session) SessionResponse {
	views := make([]string, 0, len(entities.AllViews))
	for _, v := range entities.AllViews {
		if entities.CanAccess(s.Roles, v) {
			views = append(views, string(v))
		}
	}
	return SessionResponse{
		UserID:   s.UserID,
		Name:     s.Name,
		Username: s.Username,
		Roles:    rolesToStrings(s.Roles),
		Views:    views,
	}
}

func rolesToStrings(roles []entities.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
