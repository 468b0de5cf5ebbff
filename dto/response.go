package dto

// ImportResponse is returned by the file import endpoint.
type ImportResponse struct {
	Filename     string        `json:"filename"`
	Count        int           `json:"count"`
	Transactions []Transaction `json:"transactions"`
}

// CategoryTotal is one slice of the spending summary.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SpendingSummary aggregates stored transactions for the reports endpoint.
type SpendingSummary struct {
	Total      float64         `json:"total"`
	ByCategory []CategoryTotal `json:"expense_by_category"`
}
