package validate_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
	validatePromo "github.com/m04kA/SMC-ExperienceService/internal/usecase/validate_promo"
)

const msgCodeRequired = "Promo code is required"

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

// Handle POST /api/v1/promos/validate
//
// Бизнес-исходы (истекший код, лимит использований и т.п.) возвращаются
// со статусом 200 и valid=false - это штатный результат проверки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promos/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgCodeRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, validatePromo.ErrCodeRequired):
			h.logger.Warn("POST /promos/validate - Promo code is required")
			handlers.RespondBadRequest(w, msgCodeRequired)

		default:
			h.logger.Error("POST /promos/validate - Failed to validate promo: code=%s, error=%v",
				req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promos/validate - Promo validated: code=%s, valid=%t",
		req.Code, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
