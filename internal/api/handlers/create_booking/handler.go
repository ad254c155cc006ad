package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/experience-booking/internal/api/handlers"
	"github.com/m04kA/experience-booking/internal/service/bookings/models"
	createBooking "github.com/m04kA/experience-booking/internal/usecase/create_booking"
)

const (
	// HeaderIdempotencyKey заголовок с ключом идемпотентности
	HeaderIdempotencyKey = "Idempotency-Key"

	// HeaderIdempotentReplayed выставляется, если вернули ранее созданное бронирование
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgInvalidDate          = "Invalid date, expected YYYY-MM-DD"
	msgExperienceNotFound   = "Experience not found"
	msgSlotNotFound         = "Slot not found"
	msgCapacityExceeded     = "Slot sold out or insufficient capacity"
	msgIdempotencyKeyReused = "Idempotency key already used with a different request"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		msg := handlers.ValidationMessage(err)
		h.logger.Warn("POST /bookings - Validation failed: %s", msg)
		handlers.RespondBadRequest(w, msg)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(r.Header.Get(HeaderIdempotencyKey))
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, strings.TrimPrefix(err.Error(), createBooking.ErrInvalidInput.Error()+": "))

		case errors.Is(err, createBooking.ErrNotFound):
			h.logger.Warn("POST /bookings - Experience not found: experience_id=%s", req.ExperienceID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: experience_id=%s, date=%s, time=%s",
				req.ExperienceID, req.Date, req.Time)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrIdempotencyKeyReused):
			h.logger.Warn("POST /bookings - Idempotency key reused with a different request: experience_id=%s", req.ExperienceID)
			handlers.RespondUnprocessableEntity(w, msgIdempotencyKeyReused)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: experience_id=%s, date=%s, time=%s, quantity=%d",
				req.ExperienceID, req.Date, req.Time, req.Quantity)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: experience_id=%s, error=%v",
				req.ExperienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := models.FromDomainBooking(result.Booking)

	if result.Replayed {
		h.logger.Info("POST /bookings - Idempotent replay: booking_id=%s", response.ID)
		w.Header().Set(HeaderIdempotentReplayed, "true")
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, experience_id=%s, total=%.2f",
		response.ID, response.ExperienceID, response.Total)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
