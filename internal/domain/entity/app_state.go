package entity

// AppState is the aggregate root for one banking session. It holds every piece
// of domain state the app renders and is owned exclusively by the application
// data store; anything handed out of the store is a copy of this aggregate.
//
// JSON tags match the snapshot layout persisted to the key-value store, so an
// exported snapshot from an older session imports cleanly.
type AppState struct {
	UserData         UserProfile       `json:"userData"`
	Transactions     []Transaction     `json:"transactions"`
	Beneficiaries    []Beneficiary     `json:"beneficiaries"`
	Notifications    []Notification    `json:"notifications"`
	LoanApplications []LoanApplication `json:"loanApplications"`
	Settings         AppSettings       `json:"settings"`
}

// Clone returns a structural copy sharing no slices with the receiver.
// Child entities carry only value fields, so copying the slices is enough.
func (s *AppState) Clone() *AppState {
	c := *s
	c.Transactions = CloneTransactions(s.Transactions)
	c.Beneficiaries = CloneBeneficiaries(s.Beneficiaries)
	c.Notifications = CloneNotifications(s.Notifications)
	c.LoanApplications = CloneLoanApplications(s.LoanApplications)
	return &c
}

func CloneTransactions(in []Transaction) []Transaction {
	out := make([]Transaction, len(in))
	copy(out, in)
	return out
}

func CloneBeneficiaries(in []Beneficiary) []Beneficiary {
	out := make([]Beneficiary, len(in))
	copy(out, in)
	return out
}

func CloneNotifications(in []Notification) []Notification {
	out := make([]Notification, len(in))
	copy(out, in)
	return out
}

func CloneLoanApplications(in []LoanApplication) []LoanApplication {
	out := make([]LoanApplication, len(in))
	copy(out, in)
	return out
}
