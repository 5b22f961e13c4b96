package request

type SendMessageRequest struct {
	Message  string `json:"message"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
}

type ReviewRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}
