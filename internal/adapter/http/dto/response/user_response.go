package response

import "m2_studio/internal/domain/entities"

type MeResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	IsAdmin     bool   `json:"is_admin"`
}

func FromUser(u entities.User) MeResponse {
	return MeResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Phone:       u.Phone,
		Company:     u.Company,
		Role:        string(u.Role),
		IsAdmin:     u.Role == entities.RoleAdmin,
	}
}

type JoinResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
