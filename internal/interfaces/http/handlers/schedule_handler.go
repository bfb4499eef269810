package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/myanimal/petcare-service/internal/domain"
	"go.uber.org/zap"
)

type ScheduleService interface {
	AddTimeSlots(ctx context.Context, batch domain.TimeSlotBatch) (int64, error)
	SlotsForDate(ctx context.Context, date string) (*domain.DaySlots, error)
	AllSlots(ctx context.Context) (map[string][]string, error)
	BookAppointment(ctx context.Context, req domain.AppointmentRequest) (*domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]*domain.Appointment, error)
}

// ScheduleHandler serves bookable time slots and appointments
type ScheduleHandler struct {
	service ScheduleService
	logger  *zap.Logger
}

func NewScheduleHandler(service ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, logger: logger}
}

// AddTimeSlots godoc
// @Summary Open time slots for a date
// @Description Inserts every time of the batch; an already open time fails the whole batch
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body domain.TimeSlotBatch true "Date and times"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/time-slot [post]
func (h *ScheduleHandler) AddTimeSlots(w http.ResponseWriter, r *http.Request) {
	var batch domain.TimeSlotBatch
	if err := decodeJSON(r, &batch); err != nil {
		respondError(w, h.logger, "invalid time-slot request", err)
		return
	}

	n, err := h.service.AddTimeSlots(r.Context(), batch)
	if err != nil {
		respondError(w, h.logger, "failed to add time slots", err)
		return
	}
	respondJSON(w, http.StatusCreated, struct {
		Message       string `json:"message"`
		InsertedCount int64  `json:"insertedCount"`
	}{"Time slots added successfully.", n})
}

func (h *ScheduleHandler) SlotsForDate(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.SlotsForDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		respondError(w, h.logger, "failed to get slots", err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

func (h *ScheduleHandler) AllSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.AllSlots(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to get slots", err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

// BookAppointment godoc
// @Summary Book an appointment
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body domain.AppointmentRequest true "Booking"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/appointment [post]
func (h *ScheduleHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req domain.AppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, "invalid appointment request", err)
		return
	}

	a, err := h.service.BookAppointment(r.Context(), req)
	if err != nil {
		respondError(w, h.logger, "failed to book appointment", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message":       "Appointment booked successfully",
		"appointmentId": a.ID.String(),
	})
}

func (h *ScheduleHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.ListAppointments(r.Context())
	if err != nil {
		respondError(w, h.logger, "failed to list appointments", err)
		return
	}
	respondJSON(w, http.StatusOK, appointments)
}
