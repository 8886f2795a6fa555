package get_experience

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
	getExperience "github.com/m04kA/SMC-ExperienceService/internal/usecase/get_experience"
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

// Handle GET /api/v1/experiences/{experienceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Некорректный UUID неотличим для клиента от несуществующего experience
	experienceID, err := uuid.Parse(vars["experienceId"])
	if err != nil {
		h.logger.Warn("GET /experiences/{id} - Invalid experience ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	result, err := h.useCase.Execute(r.Context(), experienceID)
	if err != nil {
		switch {
		case errors.Is(err, getExperience.ErrExperienceNotFound):
			h.logger.Warn("GET /experiences/{id} - Experience not found: id=%s", experienceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /experiences/{id} - Failed to get experience: id=%s, error=%v",
				experienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /experiences/{id} - Experience retrieved: id=%s, slots=%d",
		experienceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
