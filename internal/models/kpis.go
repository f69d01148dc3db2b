package models

// KPIs are the ratios and sums derived from grouped hook counters.
// Rates are percentages of the "ready" hook count rounded to 2 decimals.
type KPIs struct {
	CancellationCount  int64   `json:"cancellationCount"`
	MissedCallsCount   int64   `json:"missedCallsCount"`
	ConfirmationCount  int64   `json:"confirmationCount"`
	CancellationRate   float64 `json:"cancellationRate"`
	MissedCallsRate    float64 `json:"missedCallsRate"`
	ConfirmationRate   float64 `json:"confirmationRate"`
	ConfirmedOrdersSum int64   `json:"confirmedOrdersSum"`
	ReadyCount         int64   `json:"readyCount"`
}

// KPIReport pairs KPIs with the processing date they were computed for.
type KPIReport struct {
	KPIs KPIs   `json:"kpis"`
	Date string `json:"date"`
}
