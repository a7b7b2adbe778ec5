package entity

// TransactionStatus defines the possible states of a transaction record.
type TransactionStatus string

const (
	TxSuccessful TransactionStatus = "Successful"
	TxPending    TransactionStatus = "Pending"
	TxFailed     TransactionStatus = "Failed"
)

// Transaction is a single ledger record. Amount is always stored positive;
// direction is conveyed by IsDebit. ID and Reference are immutable once minted.
type Transaction struct {
	ID               string            `json:"id"`
	Type             string            `json:"type"`
	Amount           float64           `json:"amount"`
	Recipient        string            `json:"recipient,omitempty"`
	Sender           string            `json:"sender,omitempty"`
	Date             string            `json:"date"`
	Time             string            `json:"time"`
	Status           TransactionStatus `json:"status"`
	Reference        string            `json:"reference"`
	Description      string            `json:"description"`
	IsDebit          bool              `json:"isDebit"`
	Section          string            `json:"section"`
	RecipientBank    string            `json:"recipientBank,omitempty"`
	SenderBank       string            `json:"senderBank,omitempty"`
	RecipientAccount string            `json:"recipientAccount,omitempty"`
	SenderAccount    string            `json:"senderAccount,omitempty"`
	Fee              float64           `json:"fee,omitempty"`
}
