package dto

// InviteRequest captures an invitation to be mailed out. All three
// fields are required.
type InviteRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
