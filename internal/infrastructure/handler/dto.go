package handler

// HistoricalRateResponse is one lookback inside a snapshot response.
type HistoricalRateResponse struct {
	Date      string  `json:"date"`
	Rate      float64 `json:"rate"`
	PctChange float64 `json:"pct_change"`
}

// SnapshotResponse represents the response for the snapshot endpoint
type SnapshotResponse struct {
	Country        string                 `json:"country"`
	CountryCode    string                 `json:"country_code"`
	FlagURL        string                 `json:"flag_url,omitempty"`
	Capital        string                 `json:"capital,omitempty"`
	Region         string                 `json:"region,omitempty"`
	HomeCurrency   string                 `json:"home_currency"`
	DestCurrency   string                 `json:"dest_currency"`
	CurrencyName   string                 `json:"currency_name"`
	CurrencySymbol string                 `json:"currency_symbol,omitempty"`
	RateToday      float64                `json:"rate_today"`
	OneYearAgo     HistoricalRateResponse `json:"one_year_ago"`
	ThreeYearsAgo  HistoricalRateResponse `json:"three_years_ago"`
	FiveYearsAgo   HistoricalRateResponse `json:"five_years_ago"`
	Verdict        string                 `json:"verdict"`
	ElapsedMS      int64                  `json:"elapsed_ms"`
}

// CompareRequest represents the request body for the comparison endpoint
type CompareRequest struct {
	Home      string   `json:"home"`
	Countries []string `json:"countries"`
}

// ComparisonRowResponse is one ranked destination in a comparison response.
type ComparisonRowResponse struct {
	Country        string  `json:"country"`
	Currency       string  `json:"currency"`
	RateToday      float64 `json:"rate_today"`
	RateOneYearAgo float64 `json:"rate_one_year_ago"`
	PctChange      float64 `json:"pct_change"`
	Verdict        string  `json:"verdict"`
}

// ComparisonResponse represents the response for the comparison endpoint
type ComparisonResponse struct {
	HomeCurrency  string                  `json:"home_currency"`
	Rows          []ComparisonRowResponse `json:"rows"`
	MostFavorable *ComparisonRowResponse  `json:"most_favorable,omitempty"`
	ElapsedMS     int64                   `json:"elapsed_ms"`
}

// CurrenciesResponse lists the supported home currencies.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}
