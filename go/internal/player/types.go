package player

// CreatePlayerRequest contains all data needed to create a player
type CreatePlayerRequest struct {
	Name      string `json:"name" validate:"required,min=3"`
	PgaID     int    `json:"pga_id" validate:"gte=0"`
	Salary    int    `json:"salary" validate:"gte=0"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// UpdatePgaIDRequest assigns a PGA Tour id to an existing player
type UpdatePgaIDRequest struct {
	ID    string `json:"id"`
	PgaID int    `json:"pga_id"`
}
