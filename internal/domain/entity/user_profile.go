package entity

type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

// UserProfile is the account holder. Balance is the single source of truth for
// available funds and is mutated only by applying a transaction or through the
// explicit balance-set command on the store.
type UserProfile struct {
	Name           string        `json:"name"`
	AccountNumber  string        `json:"accountNumber"`
	Phone          string        `json:"phone"`
	Balance        float64       `json:"balance"`
	Email          string        `json:"email"`
	Address        string        `json:"address"`
	BVN            string        `json:"bvn"`
	ProfilePicture string        `json:"profilePicture,omitempty"`
	Status         AccountStatus `json:"status"`
}
