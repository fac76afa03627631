package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/profile"
)

type profileService interface {
	Me(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, in profile.UpdateInput) (*domain.Profile, error)
	Public(ctx context.Context, id uuid.UUID) (*profile.PublicProfile, error)
}

// ProfileHandler serves own and public profiles.
type ProfileHandler struct {
	svc      profileService
	viewer   func(ctx context.Context) *domain.Identity
	log      *slog.Logger
	currency string
}

// NewProfileHandler creates a ProfileHandler. viewer resolves the caller
// for the item actions on a public profile.
func NewProfileHandler(svc profileService, viewer func(ctx context.Context) *domain.Identity, logger *slog.Logger, currency string) *ProfileHandler {
	return &ProfileHandler{svc: svc, viewer: viewer, log: logger.With("handler", "profiles"), currency: currency}
}

type updateProfileRequest struct {
	Username  string  `json:"username"`
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}

// Me handles GET /profiles/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Update handles PUT /profiles/me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Update(r.Context(), profile.UpdateInput{
		Username:  req.Username,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Location:  req.Location,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Public handles GET /profiles/{id}.
func (h *ProfileHandler) Public(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	page, err := h.svc.Public(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p := presenter{currency: h.currency, viewer: h.viewer(r.Context())}
	writeJSON(w, http.StatusOK, p.publicProfile(page))
}
