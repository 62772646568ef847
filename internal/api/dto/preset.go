package dto

type PresetResponse struct {
	PresetID    string   `json:"preset_id"`
	Name        string   `json:"name"`
	Vehicles    []string `json:"vehicles"`
	TravelTimes []int    `json:"travel_times"`
}

type ListPresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}

type TaskTypeResponse struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

type ListTaskTypesResponse struct {
	Language  string             `json:"language"`
	TaskTypes []TaskTypeResponse `json:"task_types"`
}
