package entity

// User represents a stored user document. Optional attributes are
// pointers so that an absent value and an empty string stay distinct.
// The password hash never leaves the process as JSON.
type User struct {
	ID           string  `firestore:"id" json:"id"`
	FirstName    string  `firestore:"first_name" json:"first_name"`
	LastName     string  `firestore:"last_name" json:"last_name"`
	Email        *string `firestore:"email" json:"email"`
	PasswordHash *string `firestore:"password" json:"-"`
	ProjectID    *string `firestore:"project_id" json:"project_id"`
	PhoneNumber  *string `firestore:"phone_number" json:"phone_number"`
	CompanyName  *string `firestore:"company_name" json:"company_name"`
	Hashtag      *string `firestore:"hashtag" json:"hashtag"`
}
