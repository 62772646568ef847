package dto

import (
	"moped-route-service/internal/domain"
	"moped-route-service/internal/platform/locale"

	"golang.org/x/text/message"
)

// NewCalculationResponse renders a result with descriptions in the printer's language.
func NewCalculationResponse(id string, lang string, result *domain.TotalTimeResult, p *message.Printer) CalculationResponse {
	res := CalculationResponse{
		CalculationID: id,
		Language:      lang,
		TotalMinutes:  result.TotalMinutes,
		Summary:       locale.Total(p, result.TotalMinutes),
		Workers:       make([]WorkerResponse, 0, len(result.Workers)),
	}

	for _, wb := range result.Workers {
		items := make([]BreakdownItemResponse, 0, len(wb.Items))
		for _, item := range wb.Items {
			ir := BreakdownItemResponse{
				Kind:        string(item.Kind),
				Minutes:     item.Minutes,
				Description: locale.DescribeItem(p, item),
			}
			switch item.Kind {
			case domain.BreakdownTask:
				ir.Vehicle = item.Vehicle + 1
				ir.Count = item.Count
			case domain.BreakdownTravel:
				ir.Vehicle = item.Vehicle + 1
				ir.ToVehicle = item.Vehicle + 2
			}
			items = append(items, ir)
		}

		res.Workers = append(res.Workers, WorkerResponse{
			Name:    wb.Worker.Name,
			Code:    wb.Worker.Task.String(),
			Color:   wb.Worker.Color,
			Minutes: wb.Minutes,
			Summary: locale.WorkerTotal(p, wb),
			Items:   items,
		})
	}

	return res
}

func NewPresetResponse(p *domain.RoutePreset) PresetResponse {
	return PresetResponse{
		PresetID:    p.ID,
		Name:        p.Name,
		Vehicles:    p.Route.Vehicles,
		TravelTimes: p.Route.TravelTimes,
	}
}
