package handlers

import (
	"net/http"
	"strings"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"go.uber.org/zap"
)

// PricingHandler serves the price list and its sub-services
type PricingHandler struct {
	prices domain.PriceServiceRepository
	subs   domain.SubServiceRepository
	files  FileStore
	logger *zap.Logger
}

func NewPricingHandler(prices domain.PriceServiceRepository, subs domain.SubServiceRepository, files FileStore, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{
		prices: prices,
		subs:   subs,
		files:  files,
		logger: logger,
	}
}

type priceServiceRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
}

func (h *PricingHandler) CreatePriceService(w http.ResponseWriter, r *http.Request) {
	var req priceServiceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.logger, "invalid price service", err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price == nil {
		respondError(w, h.logger, "invalid price service", domain.NewValidationError("Name and price are required"))
		return
	}

	p := &domain.PriceService{ID: domain.NewID(), Name: name, Price: *req.Price}
	if err := h.prices.Create(r.Context(), p); err != nil {
		respondError(w, h.logger, "failed to add price service", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Service added successfully",
		"id":      p.ID.String(),
	})
}

func (h *PricingHandler) ListPriceServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.prices.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list price services", err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *PricingHandler) GetPriceService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid price service id", err)
		return
	}
	p, err := h.prices.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get price service", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *PricingHandler) UpdatePriceService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid price service id", err)
		return
	}
	var req priceServiceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.logger, "invalid price service", err)
		return
	}

	patch := domain.PriceServicePatch{
		Name:  optional(strings.TrimSpace(req.Name)),
		Price: req.Price,
	}
	if patch.IsEmpty() {
		respondError(w, h.logger, "empty price service update", domain.ErrNoFieldsToUpdate)
		return
	}
	if err := h.prices.Update(r.Context(), id, patch); err != nil {
		respondError(w, h.logger, "failed to update price service", err)
		return
	}
	respondMessage(w, "Service updated successfully")
}

func (h *PricingHandler) DeletePriceService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid price service id", err)
		return
	}
	if err := h.prices.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, "failed to delete price service", err)
		return
	}
	respondMessage(w, "Service deleted successfully")
}

func (h *PricingHandler) ListWithSubServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.prices.ListWithSubServices(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list price services", err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *PricingHandler) GetWithSubServices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid price service id", err)
		return
	}
	p, err := h.prices.FindWithSubServices(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get price service", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *PricingHandler) CreateSubService(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid sub-service form", err)
		return
	}
	name := formValue(r, "name")
	if formValue(r, "service_id") == "" || name == "" {
		respondError(w, h.logger, "invalid sub-service", domain.NewValidationError("Service ID and name are required"))
		return
	}
	serviceID, err := domain.ParseID(formValue(r, "service_id"))
	if err != nil {
		respondError(w, h.logger, "invalid sub-service", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.ImagesOnly, "img")
	if err != nil {
		respondError(w, h.logger, "failed to store sub-service image", err)
		return
	}

	s := &domain.SubService{
		ID:        domain.NewID(),
		ServiceID: serviceID,
		Name:      name,
		Img:       saved.get("img"),
		Color:     formValue(r, "color"),
	}
	if err := h.subs.Create(r.Context(), s); err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to add sub-service", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Sub-service added successfully",
		"id":      s.ID.String(),
	})
}

func (h *PricingHandler) ListSubServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.subs.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list sub-services", err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *PricingHandler) ListSubServicesByService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid price service id", err)
		return
	}
	list, err := h.subs.ListByService(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to list sub-services", err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *PricingHandler) UpdateSubService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid sub-service id", err)
		return
	}
	if err := parseForm(r); err != nil {
		respondError(w, h.logger, "invalid sub-service form", err)
		return
	}

	saved, err := saveUploads(h.files, r, uploads.ImagesOnly, "img")
	if err != nil {
		respondError(w, h.logger, "failed to store sub-service image", err)
		return
	}
	patch := domain.SubServicePatch{
		Name:  optional(formValue(r, "name")),
		Img:   saved.get("img"),
		Color: optional(formValue(r, "color")),
	}
	if patch.IsEmpty() {
		respondError(w, h.logger, "empty sub-service update", domain.ErrNoFieldsToUpdate)
		return
	}

	superseded, err := h.subs.Update(r.Context(), id, patch)
	if err != nil {
		saved.discard()
		respondError(w, h.logger, "failed to update sub-service", err)
		return
	}
	h.files.Discard(superseded...)
	respondMessage(w, "Sub-service updated successfully")
}

func (h *PricingHandler) DeleteSubService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, h.logger, "invalid sub-service id", err)
		return
	}
	paths, err := h.subs.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to delete sub-service", err)
		return
	}
	h.files.Discard(paths...)
	respondMessage(w, "Sub-service deleted successfully")
}
