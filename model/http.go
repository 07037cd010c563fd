package model

type InstrumentOverview struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	HasChart  bool   `json:"has_chart"`
	Threshold string `json:"threshold,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
