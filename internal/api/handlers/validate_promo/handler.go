package validate_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/experience-booking/internal/api/handlers"
	validatePromo "github.com/m04kA/experience-booking/internal/usecase/validate_promo"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgCodeRequired       = "Promo code required"
)

type Handler struct {
	useCase ValidatePromoUseCase
	logger  Logger
}

func NewHandler(useCase ValidatePromoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/promo/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &validatePromo.Request{Code: req.Code})
	if err != nil {
		switch {
		case errors.Is(err, validatePromo.ErrEmptyCode):
			h.logger.Warn("POST /promo/validate - Empty code")
			handlers.RespondJSON(w, http.StatusBadRequest, ValidatePromoResponse{Valid: false, Message: msgCodeRequired})

		default:
			h.logger.Error("POST /promo/validate - Failed to validate promo: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promo/validate - valid=%t", result.Valid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
