package models

// PeriodTotal is one row of an aggregation report. Period is a two-digit
// month ("01".."12") for monthly reports and a four-digit year for yearly ones.
type PeriodTotal struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

// Balance sums every income and expense record.
type Balance struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}
