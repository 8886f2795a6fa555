package get_experiences

import (
	"net/http"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
)

type Handler struct {
	useCase GetExperiencesUseCase
	logger  Logger
}

func NewHandler(useCase GetExperiencesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /experiences - Failed to list experiences: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /experiences - Returned %d experiences", len(experiences))
	handlers.RespondJSON(w, http.StatusOK, FromDomainExperienceList(experiences))
}
