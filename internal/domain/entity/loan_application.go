package entity

// LoanStatus defines the lifecycle states of a loan application. Transitions
// are one-directional in practice; there is no defined reverse transition.
type LoanStatus string

const (
	LoanDraft       LoanStatus = "Draft"
	LoanSubmitted   LoanStatus = "Submitted"
	LoanUnderReview LoanStatus = "Under Review"
	LoanApproved    LoanStatus = "Approved"
	LoanRejected    LoanStatus = "Rejected"
)

type LoanApplication struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Amount          float64    `json:"amount"`
	Term            int        `json:"term"`
	Purpose         string     `json:"purpose"`
	Status          LoanStatus `json:"status"`
	ApplicationDate string     `json:"applicationDate"`
	MonthlyPayment  float64    `json:"monthlyPayment"`
	InterestRate    float64    `json:"interestRate"`
	TotalRepayment  float64    `json:"totalRepayment"`
}
