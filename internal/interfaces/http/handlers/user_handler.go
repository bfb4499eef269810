package handlers

import (
	"context"
	"net/http"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, fields domain.UserFields, userImg string) (*domain.User, error)
	GetUser(ctx context.Context, id ulid.ULID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id ulid.ULID, fields domain.UserFields, userImg string) ([]string, error)
	DeleteUser(ctx context.Context, id ulid.ULID) ([]string, error)
}

// UserHandler handles HTTP requests for account operations
type UserHandler struct {
	service UserService
	files   FileStore
	logger  *zap.Logger
}

func NewUserHandler(service UserService, files FileStore, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		files:   files,
		logger:  logger,
	}
}

func userFields(r *http.Request) domain.UserFields {
	return domain.UserFields{
		UserName: formValue(r, "user_name"),
		Email:    formValue(r, "email"),
		MobileNo: formValue(r, "mobile_no"),
		AadharNo: formValue(r, "aadhar_no"),
		Password: r.FormValue("password"),
	}
}

// Create godoc
// @Summary Create an account
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param user_name formData string true "User name"
// @Param email formData string true "Email"
// @Param mobile_no formData string true "Mobile number"
// @Param aadhar_no formData string true "Aadhar number"
// @Param password formData string true "Password"
// @Param userImg formData file false "Profile image"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/user [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid user form", err)
		return
	}
	fields := userFields(r)
	if err := fields.Validate(false); err != nil {
		respondError(w, h.logger, "invalid user", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.AnyFile, "userImg")
	if err != nil {
		respondError(w, h.logger, "failed to store user image", err)
		return
	}
	var img string
	if p := saved.get("userImg"); p != nil {
		img = *p
	}

	user, err := h.service.CreateUser(r.Context(), fields, img)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to create user", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "User added successfully",
		"userId":  user.ID.String(),
	})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list users", err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get user", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid user form", err)
		return
	}
	fields := userFields(r)
	if err := fields.Validate(true); err != nil {
		respondError(w, h.logger, "invalid user", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.AnyFile, "userImage")
	if err != nil {
		respondError(w, h.logger, "failed to store user image", err)
		return
	}
	var img string
	if p := saved.get("userImage"); p != nil {
		img = *p
	}

	superseded, err := h.service.UpdateUser(r.Context(), id, fields, img)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to update user", err)
		return
	}
	h.files.Discard(superseded...)

	respondMessage(w, "User updated successfully")
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}
	paths, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to delete user", err)
		return
	}
	h.files.Discard(paths...)

	respondMessage(w, "User deleted successfully")
}
