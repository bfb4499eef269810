package handlers

import (
	"net/http"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"go.uber.org/zap"
)

type ScreenHandler struct {
	repo   domain.ScreenRepository
	files  FileStore
	logger *zap.Logger
}

func NewScreenHandler(repo domain.ScreenRepository, files FileStore, logger *zap.Logger) *ScreenHandler {
	return &ScreenHandler{repo: repo, files: files, logger: logger}
}

func (h *ScreenHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid screen form", err)
		return
	}
	name, description := formValue(r, "name"), formValue(r, "description")
	if name == "" || description == "" || !hasFile(r, "image") || !hasFile(r, "detailsimage") {
		respondError(w, h.logger, "invalid screen",
			domain.NewValidationError("Name, image, detailsimage, and description are required"))
		return
	}

	saved, err := saveUploads(h.files, r, uploads.ImagesOnly, "image", "detailsimage")
	if err != nil {
		respondError(w, h.logger, "failed to store screen images", err)
		return
	}

	s := &domain.Screen{
		ID:           domain.NewID(),
		Name:         name,
		Image:        *saved.get("image"),
		DetailsImage: *saved.get("detailsimage"),
		Description:  description,
	}
	if err := h.repo.Create(r.Context(), s); err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to add screen", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Screen added successfully",
		"id":      s.ID.String(),
	})
}

func (h *ScreenHandler) List(w http.ResponseWriter, r *http.Request) {
	screens, err := h.repo.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list screens", err)
		return
	}
	respondJSON(w, http.StatusOK, screens)
}

func (h *ScreenHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid screen id", err)
		return
	}
	s, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get screen", err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

func (h *ScreenHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid screen id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid screen form", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.ImagesOnly, "image", "detailsimage")
	if err != nil {
		respondError(w, h.logger, "failed to store screen images", err)
		return
	}
	patch := domain.ScreenPatch{
		Name:         optional(formValue(r, "name")),
		Description:  optional(formValue(r, "description")),
		Image:        saved.get("image"),
		DetailsImage: saved.get("detailsimage"),
	}
	if patch.IsEmpty() {
		respondError(w, h.logger, "empty screen update", domain.ErrNoFieldsToUpdate)
		return
	}

	superseded, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to update screen", err)
		return
	}
	h.files.Discard(superseded...)
	respondMessage(w, "Screen updated successfully")
}

func (h *ScreenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid screen id", err)
		return
	}
	paths, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to delete screen", err)
		return
	}
	h.files.Discard(paths...)
	respondMessage(w, "Screen deleted successfully")
}
