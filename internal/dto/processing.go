package dto

// RunPeriodRequest is the payload for run and refresh operations.
type RunPeriodRequest struct {
	CurrencyMode string `json:"currencyMode" binding:"required,oneof=USD ZWL DEFAULT"`
}

// ProcessingResponse reports the outcome of a processing operation.
type ProcessingResponse struct {
	PeriodID      string `json:"periodID"`
	CenterID      string `json:"centerID"`
	State         string `json:"state"`
	PayslipsCount int    `json:"payslipsCount,omitempty"`
}
