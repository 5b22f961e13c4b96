package request

import (
	"strings"

	"m2_studio/internal/usecase"
)

// CreateOrderRequest is the public order form. Required fields are checked
// by the usecase so the error names the missing field.
type CreateOrderRequest struct {
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Whatsapp           string `json:"whatsapp"`
	ServiceType        string `json:"service_type"`
	ProjectDescription string `json:"project_description"`
	Deadline           string `json:"deadline"`
	Budget             string `json:"budget"`
	RawFileLink        string `json:"raw_file_link"`
}

func (r CreateOrderRequest) ToInput(userID string) usecase.SubmitOrderInput {
	return usecase.SubmitOrderInput{
		UserID:      userID,
		FullName:    r.FullName,
		Email:       r.Email,
		Whatsapp:    r.Whatsapp,
		ServiceType: r.ServiceType,
		Description: r.ProjectDescription,
		Deadline:    r.Deadline,
		Budget:      r.Budget,
		RawFileLink: r.RawFileLink,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type UpdatePriceRequest struct {
	Price string `json:"price" binding:"required"`
}

// AttachFileRequest attaches an already uploaded file by URL.
type AttachFileRequest struct {
	FileURL string `json:"file_url" binding:"required"`
}

func (r AttachFileRequest) ResolveURL() string {
	return strings.TrimSpace(r.FileURL)
}
