package list_experiences

import (
	"net/http"

	"github.com/m04kA/experience-booking/internal/api/handlers"
)

type Handler struct {
	useCase ListExperiencesUseCase
	logger  Logger
}

func NewHandler(useCase ListExperiencesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /experiences - Failed to list experiences: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	cards := FromUseCaseResponse(result)

	h.logger.Info("GET /experiences - Returned %d experiences", len(cards))
	handlers.RespondJSON(w, http.StatusOK, cards)
}
