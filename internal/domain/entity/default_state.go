package entity

// DefaultState returns the built-in demo snapshot used when no persisted state
// exists. Also the source for bootstrap reseeding: a session must never start
// with an empty transaction history.
func DefaultState() *AppState {
	return &AppState{
		UserData: UserProfile{
			Name:          "ADEFEMI JOHN OLAYEMI",
			AccountNumber: "0099348976",
			Phone:         "+234 801 234 5678",
			Balance:       150000.20,
			Email:         "john.olayemi@email.com",
			Address:       "123 Lagos Street, Victoria Island, Lagos",
			BVN:           "22123456789",
			Status:        AccountActive,
		},
		Transactions: []Transaction{
			{
				ID:               "1",
				Type:             "Transfer to other bank",
				Amount:           20000,
				Recipient:        "Pedro Banabas",
				Date:             "2023-05-19",
				Time:             "10:15AM",
				Status:           TxSuccessful,
				Reference:        "TXN123456789",
				Description:      "Transfer to First Bank",
				IsDebit:          true,
				Section:          "Today",
				RecipientBank:    "First Bank",
				RecipientAccount: "0348483930",
				SenderAccount:    "0099348976",
				Fee:              30,
			},
			{
				ID:            "2",
				Type:          "Bank Deposit",
				Amount:        50000,
				Sender:        "John Smith",
				Date:          "2023-05-19",
				Time:          "09:30AM",
				Status:        TxSuccessful,
				Reference:     "TXN123456788",
				Description:   "Cash deposit",
				IsDebit:       false,
				Section:       "Today",
				SenderBank:    "Ecobank",
				SenderAccount: "0099348977",
			},
		},
		Beneficiaries: []Beneficiary{
			{ID: "1", Name: "Pedro Banabas", AccountNumber: "0348483930", Bank: "First Bank", Phone: "+234 803 123 4567"},
			{ID: "2", Name: "Sarah Johnson", AccountNumber: "0123456789", Bank: "GTBank", Phone: "+234 801 987 6543"},
		},
		Notifications:    []Notification{},
		LoanApplications: []LoanApplication{},
		Settings: AppSettings{
			Theme:          "default",
			Notifications:  true,
			SMSAlerts:      true,
			BiometricLogin: false,
			Language:       "en",
		},
	}
}
