package dto

import "errors"

// CreateTransactionRequest is the body for manual transaction creation.
type CreateTransactionRequest struct {
	Vendor   string  `json:"vendor"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// Validate checks that all required fields are present.
func (r *CreateTransactionRequest) Validate() error {
	if r.Vendor == "" || r.Amount == 0 || r.Category == "" || r.Date == "" {
		return errors.New("vendor, amount, category and date are required")
	}
	return nil
}

// UpdateTransactionRequest is a partial update; nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Vendor   *string  `json:"vendor"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     *string  `json:"date"`
}

// CreateRuleRequest is the body for savings rule creation.
type CreateRuleRequest struct {
	VendorMatch string  `json:"vendor_match"`
	SaveAmount  float64 `json:"save_amount"`
	RuleType    string  `json:"rule_type"`
}

// Validate checks that all required fields are present.
func (r *CreateRuleRequest) Validate() error {
	if r.VendorMatch == "" || r.SaveAmount == 0 {
		return errors.New("vendor_match and save_amount are required")
	}
	return nil
}

// UpdateRuleRequest is a partial update; nil fields are left unchanged.
type UpdateRuleRequest struct {
	VendorMatch *string  `json:"vendor_match"`
	SaveAmount  *float64 `json:"save_amount"`
	RuleType    *string  `json:"rule_type"`
	IsActive    *bool    `json:"is_active"`
}
