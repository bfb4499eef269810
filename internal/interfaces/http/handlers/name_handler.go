package handlers

import (
	"net/http"
	"strings"

	"github.com/myanimal/petcare-service/internal/domain"
	"go.uber.org/zap"
)

type NameHandler struct {
	repo   domain.NameRepository
	logger *zap.Logger
}

func NewNameHandler(repo domain.NameRepository, logger *zap.Logger) *NameHandler {
	return &NameHandler{repo: repo, logger: logger}
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *NameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, "invalid name request", err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if err := domain.ValidateFullName(name); err != nil {
		respondError(w, h.logger, "invalid name", err)
		return
	}

	n := &domain.FullName{ID: domain.NewID(), Name: name}
	if err := h.repo.Create(r.Context(), n); err != nil {
		respondError(w, h.logger, "failed to add name", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Name added successfully",
		"nameId":  n.ID.String(),
	})
}

func (h *NameHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.repo.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list names", err)
		return
	}
	respondJSON(w, http.StatusOK, names)
}

func (h *NameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid name id", err)
		return
	}
	n, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get name", err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

func (h *NameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid name id", err)
		return
	}
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, "invalid name request", err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if err := domain.ValidateFullName(name); err != nil {
		respondError(w, h.logger, "invalid name", err)
		return
	}

	if err := h.repo.Update(r.Context(), id, name); err != nil {
		respondError(w, h.logger, "failed to update name", err)
		return
	}
	respondMessage(w, "Name updated successfully")
}

func (h *NameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid name id", err)
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, "failed to delete name", err)
		return
	}
	respondMessage(w, "Name deleted successfully")
}
