package owners

// CreateOwnerRequest is used both to create an owner outright and to
// resolve one by email, in which case Name only applies on first creation.
type CreateOwnerRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
}
