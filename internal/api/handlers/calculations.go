package handlers

import (
	"errors"
	"moped-route-service/internal/api/dto"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/platform/locale"
	"moped-route-service/internal/ports"
	"moped-route-service/internal/services"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CalculationHandler struct {
	Presets     ports.PresetRepository
	Logger      *zap.Logger
	DefaultLang string
}

// Calculate validates the route (inline or from a preset), runs the
// calculation and renders the breakdown in the request language.
func (h *CalculationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, err.Error())
		return
	}

	tag, p := printerFor(r, h.DefaultLang)

	var result *domain.TotalTimeResult

	presetID := strings.TrimSpace(req.PresetID)
	if presetID != "" {
		if len(req.Vehicles) > 0 || len(req.TravelTimes) > 0 {
			writeError(w, r, h.Logger, http.StatusBadRequest, "use either preset_id or vehicles and travel_times")
			return
		}

		_, res, err := services.CalculatePreset(r.Context(), h.Presets, presetID)
		if errors.Is(err, domain.ErrPresetNotFound) {
			writeError(w, r, h.Logger, http.StatusNotFound, "preset not found")
			return
		}
		if err != nil {
			h.Logger.Error("calculate preset failed", zap.String("preset_id", presetID), zap.Error(err))
			writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
			return
		}
		result = res
	} else {
		route, err := domain.NewRoute(req.Vehicles, req.TravelTimes)
		if err != nil {
			writeError(w, r, h.Logger, http.StatusBadRequest, locale.DescribeError(p, err))
			return
		}
		result = services.CalculateRoute(route)
	}

	res := dto.NewCalculationResponse(uuid.NewString(), tag.String(), result, p)
	res.PresetID = presetID

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}
