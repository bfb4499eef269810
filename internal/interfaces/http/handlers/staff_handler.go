package handlers

import (
	"net/http"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"go.uber.org/zap"
)

type DoctorHandler struct {
	repo   domain.DoctorRepository
	files  FileStore
	logger *zap.Logger
}

func NewDoctorHandler(repo domain.DoctorRepository, files FileStore, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{repo: repo, files: files, logger: logger}
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid doctor form", err)
		return
	}
	name, title := formValue(r, "doctor_name"), formValue(r, "title")
	years, err := formInt(r, "year_of_experience", "Year of experience")
	if err != nil {
		respondError(w, h.logger, "invalid doctor", err)
		return
	}
	if name == "" || title == "" || years == nil || !hasFile(r, "image") {
		respondError(w, h.logger, "invalid doctor", domain.NewValidationError("All fields are required"))
		return
	}

	saved, err := saveUploads(h.files, r, uploads.ImagesOnly, "image")
	if err != nil {
		respondError(w, h.logger, "failed to store doctor image", err)
		return
	}

	d := &domain.Doctor{
		ID:               domain.NewID(),
		Image:            *saved.get("image"),
		DoctorName:       name,
		Title:            title,
		YearOfExperience: *years,
	}
	if err := h.repo.Create(r.Context(), d); err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to add doctor", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Doctor added successfully",
		"id":      d.ID.String(),
	})
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.repo.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list doctors", err)
		return
	}
	respondJSON(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid doctor id", err)
		return
	}
	d, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get doctor", err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid doctor id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid doctor form", err)
		return
	}
	years, err := formInt(r, "year_of_experience", "Year of experience")
	if err != nil {
		respondError(w, h.logger, "invalid doctor", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.ImagesOnly, "image")
	if err != nil {
		respondError(w, h.logger, "failed to store doctor image", err)
		return
	}
	patch := domain.DoctorPatch{
		Image:            saved.get("image"),
		DoctorName:       optional(formValue(r, "doctor_name")),
		Title:            optional(formValue(r, "title")),
		YearOfExperience: years,
	}
	if patch.IsEmpty() {
		respondError(w, h.logger, "empty doctor update", domain.ErrNoFieldsToUpdate)
		return
	}

	superseded, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to update doctor", err)
		return
	}
	h.files.Discard(superseded...)
	respondMessage(w, "Doctor updated successfully")
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid doctor id", err)
		return
	}
	paths, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to delete doctor", err)
		return
	}
	h.files.Discard(paths...)
	respondMessage(w, "Doctor deleted successfully")
}

type GroomerHandler struct {
	repo   domain.GroomerRepository
	files  FileStore
	logger *zap.Logger
}

func NewGroomerHandler(repo domain.GroomerRepository, files FileStore, logger *zap.Logger) *GroomerHandler {
	return &GroomerHandler{repo: repo, files: files, logger: logger}
}

func (h *GroomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid groomer form", err)
		return
	}
	name := formValue(r, "name")
	years, err := domain.ValidateGroomer(name, formValue(r, "yearsOfExperience"), hasFile(r, "photo"), true)
	if err != nil {
		respondError(w, h.logger, "invalid groomer", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.ImagesOnly, "photo")
	if err != nil {
		respondError(w, h.logger, "failed to store groomer photo", err)
		return
	}

	g := &domain.Groomer{
		ID:                domain.NewID(),
		Name:              name,
		YearsOfExperience: years,
		Photo:             *saved.get("photo"),
	}
	if err := h.repo.Create(r.Context(), g); err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to add groomer", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message":   "Groomer added successfully",
		"groomerId": g.ID.String(),
	})
}

func (h *GroomerHandler) List(w http.ResponseWriter, r *http.Request) {
	groomers, err := h.repo.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list groomers", err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Message  string            `json:"message"`
		Groomers []*domain.Groomer `json:"groomers"`
	}{"Groomers fetched successfully", groomers})
}

func (h *GroomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid groomer id", err)
		return
	}
	g, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get groomer", err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Message string          `json:"message"`
		Groomer *domain.Groomer `json:"groomer"`
	}{"Groomer fetched successfully", g})
}

// Update requires name and experience; the photo is kept unless a new one is sent
func (h *GroomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid groomer id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid groomer form", err)
		return
	}
	name := formValue(r, "name")
	years, err := domain.ValidateGroomer(name, formValue(r, "yearsOfExperience"), hasFile(r, "photo"), false)
	if err != nil {
		respondError(w, h.logger, "invalid groomer", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.ImagesOnly, "photo")
	if err != nil {
		respondError(w, h.logger, "failed to store groomer photo", err)
		return
	}
	patch := domain.GroomerPatch{
		Name:              &name,
		YearsOfExperience: &years,
		Photo:             saved.get("photo"),
	}

	superseded, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to update groomer", err)
		return
	}
	h.files.Discard(superseded...)
	respondMessage(w, "Groomer updated successfully")
}

func (h *GroomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid groomer id", err)
		return
	}
	paths, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to delete groomer", err)
		return
	}
	h.files.Discard(paths...)
	respondMessage(w, "Groomer deleted successfully")
}
