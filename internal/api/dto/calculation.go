package dto

// Either PresetID or Vehicles/TravelTimes must be set, not both.
type CalculationRequest struct {
	Vehicles    []string `json:"vehicles"`
	TravelTimes []int    `json:"travel_times"`
	PresetID    string   `json:"preset_id"`
}

// Vehicle and ToVehicle are 1-based route positions.
type BreakdownItemResponse struct {
	Kind        string `json:"kind"`
	Vehicle     int    `json:"vehicle,omitempty"`
	ToVehicle   int    `json:"to_vehicle,omitempty"`
	Count       int    `json:"count,omitempty"`
	Minutes     int    `json:"minutes"`
	Description string `json:"description"`
}

type WorkerResponse struct {
	Name    string                  `json:"name"`
	Code    string                  `json:"code"`
	Color   string                  `json:"color"`
	Minutes int                     `json:"minutes"`
	Summary string                  `json:"summary"`
	Items   []BreakdownItemResponse `json:"items"`
}

type CalculationResponse struct {
	CalculationID string           `json:"calculation_id"`
	PresetID      string           `json:"preset_id,omitempty"`
	Language      string           `json:"language"`
	TotalMinutes  int              `json:"total_minutes"`
	Summary       string           `json:"summary"`
	Workers       []WorkerResponse `json:"workers"`
}
