package dto

// CreateUserRequest captures new-user payloads. Only the names are
// required; everything else may be omitted.
type CreateUserRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	ProjectID   *string `json:"project_id"`
	PhoneNumber *string `json:"phone_number"`
	CompanyName *string `json:"company_name"`
	Hashtag     *string `json:"hashtag"`
}

// UpdateUserRequest captures partial updates. A nil pointer means the
// field was not part of the request and must keep its stored value.
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
	ProjectID   *string `json:"project_id,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Hashtag     *string `json:"hashtag,omitempty"`
}

// UserResponse represents user data returned to clients. There is
// deliberately no password field in this shape.
type UserResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email"`
	ProjectID   *string `json:"project_id"`
	PhoneNumber *string `json:"phone_number"`
	CompanyName *string `json:"company_name"`
	Hashtag     *string `json:"hashtag"`
}
