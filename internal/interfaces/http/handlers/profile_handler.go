package handlers

import (
	"context"
	"net/http"

	"github.com/myanimal/petcare-service/internal/application"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type ProfileService interface {
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)
	GetProfile(ctx context.Context, id ulid.ULID) (*domain.Profile, error)
	UpdateName(ctx context.Context, id ulid.ULID, name string) error
	UpdateProfile(ctx context.Context, id ulid.ULID, in application.ProfileUpdate) ([]string, error)
}

// ProfileHandler serves the phone-registered customer profiles
type ProfileHandler struct {
	service ProfileService
	files   FileStore
	logger  *zap.Logger
}

func NewProfileHandler(service ProfileService, files FileStore, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		files:   files,
		logger:  logger,
	}
}

type profileResponse struct {
	Message string          `json:"message"`
	User    *domain.Profile `json:"user"`
}

type profileListResponse struct {
	Message string            `json:"message"`
	Users   []*domain.Profile `json:"users"`
}

func (h *ProfileHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, "invalid update-name request", err)
		return
	}

	if err := h.service.UpdateName(r.Context(), id, req.Name); err != nil {
		respondError(w, h.logger, "failed to update name", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Name updated successfully.",
		"userId":  id.String(),
	})
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListProfiles(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list profiles", err)
		return
	}
	respondJSON(w, http.StatusOK, profileListResponse{
		Message: "User data fetched successfully",
		Users:   profiles,
	})
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}
	h.respondProfile(w, r, id)
}

// Me returns the profile of the verified session subject
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	subject, ok := domain.GetSubject(r.Context())
	if !ok {
		respondError(w, h.logger, "missing session subject", domain.ErrUnauthorized)
		return
	}
	id, err := domain.ParseID(subject)
	if err != nil {
		respondError(w, h.logger, "invalid session subject", domain.ErrUnauthorized.Wrap(err))
		return
	}
	h.respondProfile(w, r, id)
}

func (h *ProfileHandler) respondProfile(w http.ResponseWriter, r *http.Request, id ulid.ULID) {
	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profileResponse{
		Message: "User data fetched successfully",
		User:    profile,
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid profile form", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.AnyFile, "userImg")
	if err != nil {
		respondError(w, h.logger, "failed to store profile image", err)
		return
	}

	in := application.ProfileUpdate{
		PhoneNumber: formValue(r, "phoneNumber"),
		Name:        formValue(r, "name"),
		Email:       formValue(r, "email"),
		AadharNo:    formValue(r, "aadharNo"),
		Password:    r.FormValue("password"),
	}
	if p := saved.get("userImg"); p != nil {
		in.UserImg = *p
	}

	superseded, err := h.service.UpdateProfile(r.Context(), id, in)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to update profile", err)
		return
	}
	h.files.Discard(superseded...)

	respondMessage(w, "User updated successfully")
}
