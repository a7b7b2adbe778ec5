package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aidigitalcashout-cell/v0-ecobank/internal/domain/entity"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/domain/repository"
	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/sms"
)

const (
	// DefaultStorageKey is the snapshot key used when none is configured.
	DefaultStorageKey = "ecobank_app_data"

	referencePrefix = "TXN"
	dateLayout      = "2006-01-02"
	timeLayout      = "03:04PM"
)

// StoreConfig tunes the data store's persistence behavior.
type StoreConfig struct {
	// StorageKey is the key the full snapshot is written under.
	StorageKey string
	// AutosaveInterval enables the periodic background flush when > 0.
	AutosaveInterval time.Duration
}

type listener struct {
	id int
	fn func()
}

// DataStore owns the canonical application state. All reads return copies and
// all mutations go through its commands; after every command it notifies
// subscribers in registration order and flushes a snapshot to the repository.
//
// The store is built once by the composition root. Commands are guarded by a
// mutex so the single-writer guarantee holds under real OS threads.
type DataStore struct {
	mu    sync.Mutex
	state *entity.AppState

	snapshots repository.SnapshotRepository
	provider  sms.Provider
	logger    *logrus.Logger
	cfg       StoreConfig

	listeners  []listener
	nextSubID  int
	lastMintID int64

	done      chan struct{}
	closeOnce sync.Once
}

// NewDataStore loads the persisted snapshot (falling back to the built-in
// default), applies the bootstrap seeding rule, and starts the periodic
// autosave when configured. Callers must Close the store on shutdown so the
// final snapshot is flushed.
func NewDataStore(cfg StoreConfig, snapshots repository.SnapshotRepository, provider sms.Provider, logger *logrus.Logger) *DataStore {
	if cfg.StorageKey == "" {
		cfg.StorageKey = DefaultStorageKey
	}

	s := &DataStore{
		snapshots: snapshots,
		provider:  provider,
		logger:    logger,
		cfg:       cfg,
	}

	state := entity.DefaultState()
	if snapshots != nil {
		var loaded entity.AppState
		if snapshots.Load(context.Background(), cfg.StorageKey, &loaded) {
			state = &loaded
		}
	}
	s.state = state
	s.seedWhenEmpty()

	if cfg.AutosaveInterval > 0 {
		s.done = make(chan struct{})
		go s.autosave(cfg.AutosaveInterval)
	}
	return s
}

// seedWhenEmpty reseeds the default transactions and beneficiaries when the
// loaded snapshot has no transaction history. Construction-time only: explicit
// resets such as RegisterNewAccount deliberately bypass it.
func (s *DataStore) seedWhenEmpty() {
	if len(s.state.Transactions) != 0 {
		return
	}
	d := entity.DefaultState()
	s.state.Transactions = d.Transactions
	s.state.Beneficiaries = d.Beneficiaries
}

func (s *DataStore) autosave(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.Flush()
		case <-s.done:
			return
		}
	}
}

// Flush writes the current snapshot to the repository. Safe to call from the
// autosave ticker concurrently with commands.
func (s *DataStore) Flush() {
	if s.snapshots == nil {
		return
	}
	s.mu.Lock()
	snap := s.state.Clone()
	s.mu.Unlock()
	s.snapshots.Save(context.Background(), s.cfg.StorageKey, snap)
}

// Close stops the autosave ticker and performs the teardown flush.
func (s *DataStore) Close() {
	s.closeOnce.Do(func() {
		if s.done != nil {
			close(s.done)
		}
		s.Flush()
	})
}

// Subscribe registers a listener invoked after every mutating command. The
// returned function unregisters it.
func (s *DataStore) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// commit notifies subscribers synchronously in registration order and then
// persists a snapshot. A panicking listener cannot stop later listeners or the
// flush.
func (s *DataStore) commit() {
	s.mu.Lock()
	snap := s.state.Clone()
	ls := append([]listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range ls {
		s.invoke(l.fn)
	}
	if s.snapshots != nil {
		s.snapshots.Save(context.Background(), s.cfg.StorageKey, snap)
	}
}

func (s *DataStore) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil && s.logger != nil {
			s.logger.WithField("panic", r).Warn("store listener panicked")
		}
	}()
	fn()
}

// nextID mints a time-derived identifier, bumped when two mints land on the
// same millisecond. Callers must hold s.mu.
func (s *DataStore) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastMintID {
		id = s.lastMintID + 1
	}
	s.lastMintID = id
	return strconv.FormatInt(id, 10)
}

// --- accessors ---

func (s *DataStore) GetUserData() entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UserData
}

// GetTransactions returns all transactions sorted newest first by their
// combined date and time.
func (s *DataStore) GetTransactions() []entity.Transaction {
	s.mu.Lock()
	out := entity.CloneTransactions(s.state.Transactions)
	s.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		return txTime(out[i]).After(txTime(out[j]))
	})
	return out
}

func txTime(t entity.Transaction) time.Time {
	ts, err := time.Parse(dateLayout+" "+timeLayout, t.Date+" "+t.Time)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func (s *DataStore) GetTransaction(id string) (entity.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.state.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return entity.Transaction{}, false
}

func (s *DataStore) GetBeneficiaries() []entity.Beneficiary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.CloneBeneficiaries(s.state.Beneficiaries)
}

func (s *DataStore) FindBeneficiaryByAccount(accountNumber string) (entity.Beneficiary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.state.Beneficiaries {
		if b.AccountNumber == accountNumber {
			return b, true
		}
	}
	return entity.Beneficiary{}, false
}

// GetNotifications returns all notifications sorted newest first by timestamp.
func (s *DataStore) GetNotifications() []entity.Notification {
	s.mu.Lock()
	out := entity.CloneNotifications(s.state.Notifications)
	s.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		return notifTime(out[i]).After(notifTime(out[j]))
	})
	return out
}

func notifTime(n entity.Notification) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, n.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func (s *DataStore) GetUnreadNotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.state.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *DataStore) GetLoanApplications() []entity.LoanApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.CloneLoanApplications(s.state.LoanApplications)
}

func (s *DataStore) GetSettings() entity.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// HasExistingAccount reports whether a profile with an account number exists.
func (s *DataStore) HasExistingAccount() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UserData.AccountNumber != ""
}

// --- commands ---

// ProfileUpdate carries the optional profile fields of UpdateUserData. Balance
// is deliberately absent: it moves only through transactions or UpdateBalance.
type ProfileUpdate struct {
	Name          *string               `json:"name"`
	AccountNumber *string               `json:"accountNumber"`
	Phone         *string               `json:"phone"`
	Email         *string               `json:"email"`
	Address       *string               `json:"address"`
	BVN           *string               `json:"bvn"`
	Status        *entity.AccountStatus `json:"status"`
}

// UpdateUserData shallow-merges the set fields into the profile.
func (s *DataStore) UpdateUserData(in ProfileUpdate) {
	s.mu.Lock()
	u := &s.state.UserData
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.AccountNumber != nil {
		u.AccountNumber = *in.AccountNumber
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.BVN != nil {
		u.BVN = *in.BVN
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
	s.mu.Unlock()
	s.commit()
}

// UpdateBalance overrides the balance directly, for out-of-band adjustments
// such as the add-funds dialog.
func (s *DataStore) UpdateBalance(newBalance float64) {
	s.mu.Lock()
	s.state.UserData.Balance = newBalance
	s.mu.Unlock()
	s.commit()
}

func (s *DataStore) UpdateProfilePicture(ref string) {
	s.mu.Lock()
	s.state.UserData.ProfilePicture = ref
	s.mu.Unlock()
	s.commit()
}

// NewTransaction carries the caller-supplied fields of AddTransaction; id,
// reference, date and time are minted by the store.
type NewTransaction struct {
	Type             string
	Amount           float64
	Recipient        string
	Sender           string
	Status           entity.TransactionStatus
	Description      string
	IsDebit          bool
	Section          string
	RecipientBank    string
	SenderBank       string
	RecipientAccount string
	SenderAccount    string
	Fee              float64
}

// AddTransaction records a transaction and applies its balance effect, then
// dispatches SMS alerts and appends an in-app notification. The state change
// commits before any alert is sent: the returned id is always valid, and a
// non-nil error only means alert delivery failed after the fact.
//
// Debits subtract amount plus fee, credits add amount. No overdraft check is
// applied; negative balances are allowed in this simulation.
func (s *DataStore) AddTransaction(ctx context.Context, in NewTransaction) (string, error) {
	if in.Status == "" {
		in.Status = entity.TxSuccessful
	}

	s.mu.Lock()
	id := s.nextID()
	ref := referencePrefix + id
	now := time.Now()

	tx := entity.Transaction{
		ID:               id,
		Type:             in.Type,
		Amount:           in.Amount,
		Recipient:        in.Recipient,
		Sender:           in.Sender,
		Date:             now.Format(dateLayout),
		Time:             now.Format(timeLayout),
		Status:           in.Status,
		Reference:        ref,
		Description:      in.Description,
		IsDebit:          in.IsDebit,
		Section:          in.Section,
		RecipientBank:    in.RecipientBank,
		SenderBank:       in.SenderBank,
		RecipientAccount: in.RecipientAccount,
		SenderAccount:    in.SenderAccount,
		Fee:              in.Fee,
	}
	s.state.Transactions = append([]entity.Transaction{tx}, s.state.Transactions...)

	if tx.IsDebit {
		s.state.UserData.Balance -= tx.Amount + tx.Fee
	} else {
		s.state.UserData.Balance += tx.Amount
	}

	// Capture everything the alert step needs while still under the lock.
	var alerts []sms.Message
	if s.state.Settings.SMSAlerts && tx.IsDebit && tx.Recipient != "" {
		alerts = append(alerts, sms.Message{
			To:       s.state.UserData.Phone,
			Body:     sms.DebitAlert(tx.Amount, tx.Recipient, s.state.UserData.Balance, ref),
			Category: sms.CategoryDebit,
		})
		for _, b := range s.state.Beneficiaries {
			if b.Name == tx.Recipient {
				if b.Phone != "" {
					// Recipient balance is unknown on our side.
					alerts = append(alerts, sms.Message{
						To:       b.Phone,
						Body:     sms.CreditAlert(tx.Amount, s.state.UserData.Name, 0, ref),
						Category: sms.CategoryCredit,
					})
				}
				break
			}
		}
	}
	s.mu.Unlock()

	alertErr := s.dispatchAlerts(ctx, alerts)

	title, verb, counterparty := "Money Received", "received from", tx.Sender
	if tx.IsDebit {
		title, verb, counterparty = "Money Sent", "sent to", tx.Recipient
	}
	s.AddNotification(NewNotification{
		Title:   title,
		Message: fmt.Sprintf("%s %s %s", sms.FormatNaira(tx.Amount), verb, counterparty),
		Type:    entity.SeveritySuccess,
	})

	s.commit()
	return id, alertErr
}

// dispatchAlerts sends the alerts sequentially and stops at the first failure.
func (s *DataStore) dispatchAlerts(ctx context.Context, alerts []sms.Message) error {
	if s.provider == nil {
		return nil
	}
	for _, m := range alerts {
		if _, err := s.provider.Send(ctx, m); err != nil {
			if s.logger != nil {
				s.logger.WithError(err).WithField("category", m.Category).Error("transaction alert dispatch failed")
			}
			return fmt.Errorf("dispatch %s alert: %w", m.Category, err)
		}
	}
	return nil
}

// NewBeneficiary carries the caller-supplied fields of AddBeneficiary.
type NewBeneficiary struct {
	Name          string
	AccountNumber string
	Bank          string
	Phone         string
}

func (s *DataStore) AddBeneficiary(in NewBeneficiary) string {
	s.mu.Lock()
	id := s.nextID()
	s.state.Beneficiaries = append(s.state.Beneficiaries, entity.Beneficiary{
		ID:            id,
		Name:          in.Name,
		AccountNumber: in.AccountNumber,
		Bank:          in.Bank,
		Phone:         in.Phone,
	})
	s.mu.Unlock()
	s.commit()
	return id
}

// NewNotification carries the caller-supplied fields of AddNotification.
type NewNotification struct {
	Title   string
	Message string
	Type    entity.Severity
}

func (s *DataStore) AddNotification(in NewNotification) {
	s.mu.Lock()
	n := entity.Notification{
		ID:        s.nextID(),
		Title:     in.Title,
		Message:   in.Message,
		Type:      in.Type,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Read:      false,
	}
	s.state.Notifications = append([]entity.Notification{n}, s.state.Notifications...)
	s.mu.Unlock()
	s.commit()
}

// MarkNotificationAsRead flips the read flag. Unknown ids are a no-op; marking
// twice is idempotent.
func (s *DataStore) MarkNotificationAsRead(id string) {
	s.mu.Lock()
	found := false
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].Read = true
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.commit()
	}
}

// NewLoanApplication carries the caller-supplied fields of AddLoanApplication.
type NewLoanApplication struct {
	Type           string
	Amount         float64
	Term           int
	Purpose        string
	Status         entity.LoanStatus
	MonthlyPayment float64
	InterestRate   float64
	TotalRepayment float64
}

func (s *DataStore) AddLoanApplication(in NewLoanApplication) string {
	if in.Status == "" {
		in.Status = entity.LoanSubmitted
	}
	s.mu.Lock()
	id := s.nextID()
	s.state.LoanApplications = append(s.state.LoanApplications, entity.LoanApplication{
		ID:              id,
		Type:            in.Type,
		Amount:          in.Amount,
		Term:            in.Term,
		Purpose:         in.Purpose,
		Status:          in.Status,
		ApplicationDate: time.Now().UTC().Format(time.RFC3339Nano),
		MonthlyPayment:  in.MonthlyPayment,
		InterestRate:    in.InterestRate,
		TotalRepayment:  in.TotalRepayment,
	})
	s.mu.Unlock()

	s.AddNotification(NewNotification{
		Title:   "Loan Application Submitted",
		Message: fmt.Sprintf("Your %s application for %s has been submitted", in.Type, sms.FormatNaira(in.Amount)),
		Type:    entity.SeverityInfo,
	})
	s.commit()
	return id
}

// UpdateLoanApplicationStatus sets the status and emits a notification whose
// severity follows the outcome. Unknown ids are a no-op.
func (s *DataStore) UpdateLoanApplicationStatus(id string, status entity.LoanStatus) {
	s.mu.Lock()
	found := false
	for i := range s.state.LoanApplications {
		if s.state.LoanApplications[i].ID == id {
			s.state.LoanApplications[i].Status = status
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return
	}

	severity := entity.SeverityInfo
	switch status {
	case entity.LoanApproved:
		severity = entity.SeveritySuccess
	case entity.LoanRejected:
		severity = entity.SeverityError
	}
	s.AddNotification(NewNotification{
		Title:   "Loan Application Update",
		Message: fmt.Sprintf("Your loan application status has been updated to: %s", status),
		Type:    severity,
	})
	s.commit()
}

// SettingsUpdate carries the optional fields of UpdateSettings.
type SettingsUpdate struct {
	Theme          *string `json:"theme"`
	Notifications  *bool   `json:"notifications"`
	SMSAlerts      *bool   `json:"smsAlerts"`
	BiometricLogin *bool   `json:"biometricLogin"`
	Language       *string `json:"language"`
}

// UpdateSettings shallow-merges the set fields.
func (s *DataStore) UpdateSettings(in SettingsUpdate) {
	s.mu.Lock()
	st := &s.state.Settings
	if in.Theme != nil {
		st.Theme = *in.Theme
	}
	if in.Notifications != nil {
		st.Notifications = *in.Notifications
	}
	if in.SMSAlerts != nil {
		st.SMSAlerts = *in.SMSAlerts
	}
	if in.BiometricLogin != nil {
		st.BiometricLogin = *in.BiometricLogin
	}
	if in.Language != nil {
		st.Language = *in.Language
	}
	s.mu.Unlock()
	s.commit()
}

// ClearAllData deletes the persisted snapshot and resets the in-memory state
// to the default snapshot.
func (s *DataStore) ClearAllData() {
	if s.snapshots != nil {
		s.snapshots.Clear(context.Background())
	}
	s.mu.Lock()
	s.state = entity.DefaultState()
	s.mu.Unlock()
	s.commit()
}

// ExportData returns the complete serialized snapshot of the aggregate.
func (s *DataStore) ExportData() ([]byte, error) {
	s.mu.Lock()
	snap := s.state.Clone()
	s.mu.Unlock()
	return json.MarshalIndent(snap, "", "  ")
}

// ImportData replaces the entire aggregate with the parsed snapshot. On parse
// failure nothing is applied and false is returned.
func (s *DataStore) ImportData(data []byte) bool {
	var imported entity.AppState
	if err := json.Unmarshal(data, &imported); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Error("failed to import data")
		}
		return false
	}
	s.mu.Lock()
	s.state = &imported
	s.mu.Unlock()
	s.commit()
	return true
}

// RegisterAccountInput carries the sign-up form fields. The PIN belongs to the
// credential collaborator and is never stored in the aggregate.
type RegisterAccountInput struct {
	Name          string
	AccountNumber string
	Email         string
	Phone         string
	PIN           string
}

// RegisterNewAccount replaces the profile with a fresh zero-balance one and
// empties transactions and beneficiaries. Bootstrap seeding does not re-fire
// here; a newly registered account really starts empty.
func (s *DataStore) RegisterNewAccount(in RegisterAccountInput) {
	s.mu.Lock()
	s.state.UserData = entity.UserProfile{
		Name:          in.Name,
		AccountNumber: in.AccountNumber,
		Phone:         in.Phone,
		Balance:       0,
		Email:         in.Email,
		Status:        entity.AccountActive,
	}
	s.state.Transactions = []entity.Transaction{}
	s.state.Beneficiaries = []entity.Beneficiary{}
	s.mu.Unlock()
	s.commit()
}
