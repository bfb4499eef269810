package handlers

import (
	"net/http"
	"strings"

	"github.com/myanimal/petcare-service/internal/domain"
	"go.uber.org/zap"
)

type ContactHandler struct {
	repo   domain.ContactRepository
	logger *zap.Logger
}

func NewContactHandler(repo domain.ContactRepository, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{repo: repo, logger: logger}
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type updateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.logger, "invalid contact", err)
		return
	}

	c := &domain.Contact{
		ID:      domain.NewID(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: req.Message,
	}
	if err := h.repo.Create(r.Context(), c); err != nil {
		respondError(w, h.logger, "failed to add contact", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Contact added successfully",
		"id":      c.ID.String(),
	})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.repo.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list contacts", err)
		return
	}
	respondJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid contact id", err)
		return
	}
	c, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get contact", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid contact id", err)
		return
	}
	var req updateContactRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.logger, "invalid contact", err)
		return
	}

	patch := domain.ContactPatch{
		Name:    optional(strings.TrimSpace(req.Name)),
		Email:   optional(strings.TrimSpace(req.Email)),
		Message: optional(req.Message),
	}
	if patch.IsEmpty() {
		respondError(w, h.logger, "empty contact update", domain.ErrNoFieldsToUpdate)
		return
	}
	if err := h.repo.Update(r.Context(), id, patch); err != nil {
		respondError(w, h.logger, "failed to update contact", err)
		return
	}
	respondMessage(w, "Contact updated successfully")
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid contact id", err)
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, "failed to delete contact", err)
		return
	}
	respondMessage(w, "Contact deleted successfully")
}
