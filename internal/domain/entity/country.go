package entity

// Country is a destination country loaded from the metadata provider,
// normalized down to a single primary currency. The primary currency is the
// first one the provider lists for the country; that order is
// provider-defined, so multi-currency countries keep whichever currency the
// upstream happens to list first.
type Country struct {
	Name           string `json:"name"`
	Code           string `json:"code"`
	FlagURL        string `json:"flag_url,omitempty"`
	Capital        string `json:"capital,omitempty"`
	Region         string `json:"region,omitempty"`
	CurrencyCode   string `json:"currency_code"`
	CurrencyName   string `json:"currency_name"`
	CurrencySymbol string `json:"currency_symbol,omitempty"`
}
