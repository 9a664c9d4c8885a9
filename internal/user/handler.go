package user

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sonexa-app/sonexa-api/internal/auth"
	"github.com/sonexa-app/sonexa-api/internal/config"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GetUser returns the acting account's profile, creating the local record
// from the verified claims on first sight.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.repo.GetByExternalID(claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to fetch user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if u == nil {
		u = &User{
			ID:         uuid.New(),
			ExternalID: claims.UserID,
			Email:      claims.Email,
		}
		if claims.Name != "" {
			name := claims.Name
			u.Name = &name
		}
		if err := h.repo.Create(u); err != nil {
			log.WithError(err).Error("failed to sync user record")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	config.JSON(w, http.StatusOK, u)
}
