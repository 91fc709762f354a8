package models

// Candidate is the client-side copy of a candidate record. The server owns
// the record; every screen re-fetches it on mount and this copy is never
// written back except through the explicit API operations.
type Candidate struct {
	ID             string   `json:"_id"`
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	Mobile         string   `json:"mobile"`
	Address        string   `json:"address"`
	Skills         []string `json:"skills"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Resume         string   `json:"resume,omitempty"`
}

// CreateCandidateRequest is the payload for the admin create-candidate call.
// Skills keep their input order; duplicates are passed through as entered.
type CreateCandidateRequest struct {
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	FullName string   `json:"fullName" validate:"required"`
	Mobile   string   `json:"mobile" validate:"required"`
	Address  string   `json:"address" validate:"required"`
	Skills   []string `json:"skills"`
}

// UploadResult carries the server-returned file references after an upload.
// Only the field matching the uploaded kind is populated.
type UploadResult struct {
	ProfilePicture string `json:"profilePicture,omitempty"`
	Resume         string `json:"resume,omitempty"`
}
