package contact

// incoming contact form submission; Website is the hidden honeypot
// field and FormToken the timing token issued at render time
type SubmitRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Website   string `json:"website"`
	FormToken string `json:"formToken"`
}

// acknowledgement returned for accepted submissions
type SubmitResponse struct {
	Status string `json:"status"`
}
