package handlers

import (
	"net/http"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"go.uber.org/zap"
)

// CatalogHandler serves grooming categories and the services inside them
type CatalogHandler struct {
	categories domain.CategoryRepository
	services   domain.ServiceRepository
	files      FileStore
	logger     *zap.Logger
}

func NewCatalogHandler(categories domain.CategoryRepository, services domain.ServiceRepository, files FileStore, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		categories: categories,
		services:   services,
		files:      files,
		logger:     logger,
	}
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid category form", err)
		return
	}
	name := formValue(r, "categoryName")
	if name == "" {
		respondError(w, h.logger, "invalid category", domain.NewValidationError("Category name is required"))
		return
	}
	price, err := formFloat(r, "price", "Price")
	if err != nil {
		respondError(w, h.logger, "invalid category", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.AnyFile, "categoryImg")
	if err != nil {
		respondError(w, h.logger, "failed to store category image", err)
		return
	}

	c := &domain.Category{
		ID:           domain.NewID(),
		CategoryName: name,
		CategoryImg:  saved.get("categoryImg"),
		Description:  optional(formValue(r, "description")),
		Price:        price,
		ColorCode:    optional(formValue(r, "colorcode")),
	}
	if err := h.categories.Create(r.Context(), c); err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to add category", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message":    "Category added successfully",
		"categoryId": c.ID.String(),
	})
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list categories", err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid category id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid category form", err)
		return
	}
	price, err := formFloat(r, "price", "Price")
	if err != nil {
		respondError(w, h.logger, "invalid category", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.AnyFile, "categoryImg")
	if err != nil {
		respondError(w, h.logger, "failed to store category image", err)
		return
	}
	patch := domain.CategoryPatch{
		CategoryName: optional(formValue(r, "categoryName")),
		CategoryImg:  saved.get("categoryImg"),
		Description:  optional(formValue(r, "description")),
		Price:        price,
		ColorCode:    optional(formValue(r, "colorcode")),
	}
	if patch.IsEmpty() {
		respondError(w, h.logger, "empty category update", domain.ErrNoFieldsToUpdate)
		return
	}

	superseded, err := h.categories.Update(r.Context(), id, patch)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to update category", err)
		return
	}
	h.files.Discard(superseded...)
	respondMessage(w, "Category updated successfully")
}

// DeleteCategory removes the category with its services and all their images
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid category id", err)
		return
	}
	paths, err := h.categories.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to delete category", err)
		return
	}
	h.files.Discard(paths...)
	respondMessage(w, "Category deleted successfully")
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid category id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid service form", err)
		return
	}

	name, color, description := formValue(r, "serviceName"), formValue(r, "colorResource"), formValue(r, "description")
	var missing string
	switch {
	case name == "":
		missing = "Service name is required"
	case color == "":
		missing = "Color Resource is required"
	case description == "":
		missing = "Description is required"
	case formValue(r, "price") == "":
		missing = "Price is required"
	}
	if missing != "" {
		respondError(w, h.logger, "invalid service", domain.NewValidationError(missing))
		return
	}
	price, err := formFloat(r, "price", "Price")
	if err != nil {
		respondError(w, h.logger, "invalid service", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.AnyFile, "serviceImg", "serviceIcon")
	if err != nil {
		respondError(w, h.logger, "failed to store service images", err)
		return
	}

	s := &domain.Service{
		ID:            domain.NewID(),
		CategoryID:    categoryID,
		ServiceName:   name,
		ColorResource: color,
		ServiceImg:    saved.get("serviceImg"),
		ServiceIcon:   saved.get("serviceIcon"),
		Description:   description,
		Price:         *price,
	}
	if err := h.services.Create(r.Context(), s); err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to add service", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message":   "Service added successfully",
		"serviceId": s.ID.String(),
	})
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid category id", err)
		return
	}
	services, err := h.services.ListByCategory(r.Context(), categoryID)
	if err != nil {
		respondError(w, h.logger, "failed to list services", err)
		return
	}
	respondJSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid service id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid service form", err)
		return
	}
	price, err := formFloat(r, "price", "Price")
	if err != nil {
		respondError(w, h.logger, "invalid service", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.AnyFile, "serviceImg", "serviceIcon")
	if err != nil {
		respondError(w, h.logger, "failed to store service images", err)
		return
	}
	patch := domain.ServicePatch{
		ServiceName:   optional(formValue(r, "serviceName")),
		ColorResource: optional(formValue(r, "colorResource")),
		ServiceImg:    saved.get("serviceImg"),
		ServiceIcon:   saved.get("serviceIcon"),
		Description:   optional(formValue(r, "description")),
		Price:         price,
	}
	if patch.IsEmpty() {
		respondError(w, h.logger, "empty service update", domain.ErrNoFieldsToUpdate)
		return
	}

	superseded, err := h.services.Update(r.Context(), id, patch)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to update service", err)
		return
	}
	h.files.Discard(superseded...)
	respondMessage(w, "Service updated successfully")
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid service id", err)
		return
	}
	paths, err := h.services.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to delete service", err)
		return
	}
	h.files.Discard(paths...)
	respondMessage(w, "Service deleted successfully")
}
