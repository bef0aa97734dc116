package handler

import (
	"net/http"
	"time"

	"dogbooking/internal/bookings/service"
	"dogbooking/internal/bookings/validator"
	apperrors "dogbooking/pkg/errors"
	httputil "dogbooking/pkg/http"
	"dogbooking/pkg/logger"
	"dogbooking/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) CreateOwner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.OwnerRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "CreateOwner", err)
		return
	}

	owner, err := h.service.CreateOwner(r.Context(), &req)
	if err != nil {
		h.writeError(w, "CreateOwner", err)
		return
	}

	if err := httputil.WriteCreated(w, owner); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateOwner", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) CreateDog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.DogRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "CreateDog", err)
		return
	}

	dog, err := h.service.CreateDog(r.Context(), &req)
	if err != nil {
		h.writeError(w, "CreateDog", err)
		return
	}

	if err := httputil.WriteCreated(w, dog); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateDog", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "CreateBooking", err)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.writeError(w, "CreateBooking", err)
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateBooking", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.CancelBooking(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "CancelBooking", err)
		return
	}

	httputil.WriteNoContent(w)
}

// GetUpcoming lists upcoming bookings. The optional "from" query parameter
// (RFC 3339) replaces the current time as the reference point.
func (h *BookingHandler) GetUpcoming(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var from time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := validator.ParseStartTime(raw)
		if err != nil {
			h.writeError(w, "GetUpcoming", apperrors.InvalidInput("Invalid from parameter, expected RFC3339", err))
			return
		}
		from = parsed
	}

	bookings, err := h.service.GetUpcoming(r.Context(), from)
	if err != nil {
		h.writeError(w, "GetUpcoming", err)
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetUpcoming", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/owners", h.CreateOwner)
	router.POST("/api/v1/dogs", h.CreateDog)
	router.POST("/api/v1/bookings", h.CreateBooking)
	router.POST("/api/v1/bookings/id/:id/cancel", h.CancelBooking)
	router.GET("/api/v1/bookings", h.GetUpcoming)
}
