package models

// MortgageRate is one row of the static rate sheet shown on the
// mortgage page. Rates are display strings, not calculator inputs.
type MortgageRate struct {
	Title    string   `json:"title"`
	Tag      string   `json:"tag"`
	Rate     string   `json:"rate"`
	APR      string   `json:"apr"`
	Points   string   `json:"points"`
	Features []string `json:"features"`
}

type MortgageFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
