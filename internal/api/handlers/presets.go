package handlers

import (
	"errors"
	"moped-route-service/internal/api/dto"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/ports"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PresetHandler exposes read-only preset endpoints.
type PresetHandler struct {
	Repo   ports.PresetRepository
	Logger *zap.Logger
}

func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	presets, err := h.Repo.ListPresets(r.Context())
	if err != nil {
		h.Logger.Error("list presets failed", zap.Error(err))
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPresetsResponse{
		Presets: make([]dto.PresetResponse, 0, len(presets)),
	}
	for _, p := range presets {
		res.Presets = append(res.Presets, dto.NewPresetResponse(p))
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

func (h *PresetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	preset, err := h.Repo.GetPreset(r.Context(), id)
	if errors.Is(err, domain.ErrPresetNotFound) {
		writeError(w, r, h.Logger, http.StatusNotFound, "preset not found")
		return
	}
	if err != nil {
		h.Logger.Error("get preset failed", zap.String("preset_id", id), zap.Error(err))
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.NewPresetResponse(preset))
}
