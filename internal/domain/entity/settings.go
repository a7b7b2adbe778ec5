package entity

// AppSettings holds user preferences. Fields toggle independently; there is no
// cross-field invariant.
type AppSettings struct {
	Theme          string `json:"theme"`
	Notifications  bool   `json:"notifications"`
	SMSAlerts      bool   `json:"smsAlerts"`
	BiometricLogin bool   `json:"biometricLogin"`
	Language       string `json:"language"`
}
