package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ExperienceService/internal/usecase/create_booking"
)

const (
	msgMissingFields      = "Missing required fields"
	msgSlotNotFound       = "Slot not found"
	msgExperienceNotFound = "Experience not found"
	msgNotEnoughCapacity  = "Not enough capacity available"
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
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid identifiers: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingFields):
			h.logger.Warn("POST /bookings - Missing required fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", ucReq.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrExperienceNotFound):
			h.logger.Warn("POST /bookings - Experience not found: experience_id=%s", ucReq.ExperienceID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, createBooking.ErrNotEnoughCapacity):
			h.logger.Warn("POST /bookings - Not enough capacity: slot_id=%s, num_people=%d",
				ucReq.SlotID, ucReq.NumPeople)
			handlers.RespondBadRequest(w, msgNotEnoughCapacity)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: slot_id=%s, error=%v",
				ucReq.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: reference=%s, slot_id=%s, num_people=%d",
		result.BookingReference, ucReq.SlotID, ucReq.NumPeople)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
