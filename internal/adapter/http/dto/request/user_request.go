package request

import "m2_studio/internal/usecase"

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

func (r UpdateProfileRequest) ToInput() usecase.ProfileInput {
	return usecase.ProfileInput{Name: r.Name, Phone: r.Phone, Company: r.Company}
}

// JoinRequest is the team application form. Missing fields are reported
// by the usecase so the error names the field.
type JoinRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Device     string `json:"device"`
	Software   string `json:"software"`
	Position   string `json:"position"`
	Portfolio  string `json:"portfolio"`
	WhyJoin    string `json:"why_join"`
	Durability string `json:"durability"`
}

func (r JoinRequest) ToInput() usecase.ApplicationInput {
	return usecase.ApplicationInput{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Device:     r.Device,
		Software:   r.Software,
		Position:   r.Position,
		Portfolio:  r.Portfolio,
		WhyJoin:    r.WhyJoin,
		Durability: r.Durability,
	}
}
