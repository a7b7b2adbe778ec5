package entity

// Beneficiary is a saved transfer recipient. Account numbers are not required
// to be unique across beneficiaries; lookups are by exact match.
type Beneficiary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
	Phone         string `json:"phone,omitempty"`
}
