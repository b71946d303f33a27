package sellers

import (
	"time"

	"github.com/google/uuid"

	"github.com/tetraedu/desempenho-backend/pkg/db/models"
)

// SellerDTO is the transport shape for roster entries.
type SellerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(s *models.Seller) *SellerDTO {
	if s == nil {
		return nil
	}
	return &SellerDTO{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		PhotoURL:  s.PhotoURL,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}
