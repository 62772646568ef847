package handlers

import (
	"moped-route-service/internal/api/dto"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/platform/locale"
	"net/http"

	"go.uber.org/zap"
)

// TaskTypes lists the fixed task table with labels in the request language.
func TaskTypes(logger *zap.Logger, defaultLang string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, p := printerFor(r, defaultLang)

		codes := domain.TaskCodes()
		res := dto.ListTaskTypesResponse{
			Language:  tag.String(),
			TaskTypes: make([]dto.TaskTypeResponse, 0, len(codes)),
		}
		for _, c := range codes {
			res.TaskTypes = append(res.TaskTypes, dto.TaskTypeResponse{
				Code:    c.String(),
				Label:   locale.TaskLabel(p, c),
				Minutes: c.Minutes(),
			})
		}

		writeJSON(w, r, logger, http.StatusOK, res)
	}
}
