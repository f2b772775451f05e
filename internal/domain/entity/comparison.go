package entity

// Verdict classifies a rate movement against the ~1 year baseline.
type Verdict string

const (
	// VerdictFavorable means the home currency buys noticeably more local
	// currency than it did a year ago.
	VerdictFavorable Verdict = "favorable"
	// VerdictUnfavorable means it buys noticeably less.
	VerdictUnfavorable Verdict = "unfavorable"
	// VerdictSimilar means the rate moved less than the threshold either way.
	VerdictSimilar Verdict = "similar"
)

// ComparisonRow is one destination's today-vs-a-year-ago result inside a
// multi-country comparison. Rows are derived per request and never persisted.
type ComparisonRow struct {
	Country        string  `json:"country"`
	Currency       string  `json:"currency"`
	RateToday      float64 `json:"rate_today"`
	RateOneYearAgo float64 `json:"rate_one_year_ago"`
	PctChange      float64 `json:"pct_change"`
	Verdict        Verdict `json:"verdict"`
}
