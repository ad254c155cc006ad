package get_experience

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/experience-booking/internal/api/handlers"
	getExperience "github.com/m04kA/experience-booking/internal/usecase/get_experience"
)

const msgNotFound = "Experience not found"

type Handler struct {
	useCase GetExperienceUseCase
	logger  Logger
}

func NewHandler(useCase GetExperienceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	experienceID := mux.Vars(r)["id"]

	result, err := h.useCase.Execute(r.Context(), &getExperience.Request{ExperienceID: experienceID})
	if err != nil {
		switch {
		case errors.Is(err, getExperience.ErrNotFound):
			h.logger.Warn("GET /experiences/{id} - Experience not found: id=%s", experienceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /experiences/{id} - Failed to get experience: id=%s, error=%v", experienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /experiences/{id} - Experience retrieved: id=%s, dates=%d", experienceID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
