package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aidigitalcashout-cell/v0-ecobank/internal/application"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/domain/entity"
	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/helpers"
	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/response"
	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/validation"
)

// BankHandler is the UI-facing surface over the data store: every route is a
// thin pass-through to a store accessor or command.
type BankHandler struct {
	Store     *application.DataStore
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewBankHandler(store *application.DataStore, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *BankHandler {
	return &BankHandler{Store: store, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

// --- profile ---

func (h *BankHandler) GetProfile(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Store.GetUserData(), "profile")
}

func (h *BankHandler) UpdateProfile(c *gin.Context) {
	var req application.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.Store.UpdateUserData(req)
	response.Success(c, http.StatusOK, h.Store.GetUserData(), "profile updated")
}

type updateBalanceRequest struct {
	Balance *float64 `json:"balance" binding:"required"`
}

func (h *BankHandler) UpdateBalance(c *gin.Context) {
	var req updateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.Store.UpdateBalance(*req.Balance)
	response.Success(c, http.StatusOK, h.Store.GetUserData(), "balance updated")
}

// UploadProfilePicture stores the uploaded image in GCS and records its public
// URL on the profile.
func (h *BankHandler) UploadProfilePicture(c *gin.Context) {
	if h.GCS == nil || h.GCSBucket == "" {
		response.Error(c, http.StatusServiceUnavailable, "picture storage not configured", nil)
		return
	}
	file, err := c.FormFile("picture")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "missing picture file", nil)
		return
	}
	src, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "unreadable picture file", nil)
		return
	}
	defer func() { _ = src.Close() }()

	contentType := file.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectPath := filepath.ToSlash(filepath.Join("profile-pictures", h.Store.GetUserData().AccountNumber, uuid.NewString()+ext))

	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.GCSBucket, objectPath, contentType, src)
	if err != nil {
		h.Logger.WithError(err).Error("profile picture upload failed")
		response.Error(c, http.StatusInternalServerError, "failed to store picture", nil)
		return
	}
	h.Store.UpdateProfilePicture(url)
	response.Success(c, http.StatusOK, gin.H{"profilePicture": url}, "profile picture updated")
}

// --- transactions ---

func (h *BankHandler) ListTransactions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Store.GetTransactions(), "transactions")
}

func (h *BankHandler) GetTransaction(c *gin.Context) {
	tx, ok := h.Store.GetTransaction(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "transaction not found", nil)
		return
	}
	response.Success(c, http.StatusOK, tx, "transaction")
}

type transferRequest struct {
	Type             string  `json:"type" binding:"required"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	Recipient        string  `json:"recipient"`
	Sender           string  `json:"sender"`
	Description      string  `json:"description"`
	IsDebit          bool    `json:"isDebit"`
	Section          string  `json:"section"`
	RecipientBank    string  `json:"recipientBank"`
	SenderBank       string  `json:"senderBank"`
	RecipientAccount string  `json:"recipientAccount"`
	SenderAccount    string  `json:"senderAccount"`
	Fee              float64 `json:"fee" binding:"omitempty,gte=0"`
}

// CreateTransfer records a transaction. The record commits even when alert
// delivery fails; that outcome is reported in the response message.
func (h *BankHandler) CreateTransfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	id, alertErr := h.Store.AddTransaction(c.Request.Context(), application.NewTransaction{
		Type:             req.Type,
		Amount:           req.Amount,
		Recipient:        req.Recipient,
		Sender:           req.Sender,
		Status:           entity.TxSuccessful,
		Description:      req.Description,
		IsDebit:          req.IsDebit,
		Section:          req.Section,
		RecipientBank:    req.RecipientBank,
		SenderBank:       req.SenderBank,
		RecipientAccount: req.RecipientAccount,
		SenderAccount:    req.SenderAccount,
		Fee:              req.Fee,
	})

	tx, _ := h.Store.GetTransaction(id)
	msg := "transaction recorded"
	if alertErr != nil {
		msg = "transaction recorded; alert delivery failed"
	}
	response.Success(c, http.StatusCreated, tx, msg)
}

// --- beneficiaries ---

func (h *BankHandler) ListBeneficiaries(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Store.GetBeneficiaries(), "beneficiaries")
}

type addBeneficiaryRequest struct {
	Name          string `json:"name" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	Bank          string `json:"bank" binding:"required"`
	Phone         string `json:"phone"`
}

func (h *BankHandler) AddBeneficiary(c *gin.Context) {
	var req addBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id := h.Store.AddBeneficiary(application.NewBeneficiary{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Bank:          req.Bank,
		Phone:         req.Phone,
	})
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "beneficiary added")
}

func (h *BankHandler) FindBeneficiary(c *gin.Context) {
	acct := c.Query("accountNumber")
	if acct == "" {
		response.Error(c, http.StatusBadRequest, "accountNumber query parameter is required", nil)
		return
	}
	b, ok := h.Store.FindBeneficiaryByAccount(acct)
	if !ok {
		response.Error(c, http.StatusNotFound, "beneficiary not found", nil)
		return
	}
	response.Success(c, http.StatusOK, b, "beneficiary")
}

// --- notifications ---

func (h *BankHandler) ListNotifications(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Store.GetNotifications(), "notifications")
}

func (h *BankHandler) UnreadNotificationCount(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"count": h.Store.GetUnreadNotificationCount()}, "unread count")
}

// MarkNotificationRead marks one notification read. Unknown ids are a silent
// no-op, mirroring the store semantics.
func (h *BankHandler) MarkNotificationRead(c *gin.Context) {
	h.Store.MarkNotificationAsRead(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"read": true}, "notification read")
}

// --- loans ---

func (h *BankHandler) ListLoanApplications(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Store.GetLoanApplications(), "loan applications")
}

type loanApplicationRequest struct {
	Type           string  `json:"type" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	Term           int     `json:"term" binding:"required,gt=0"`
	Purpose        string  `json:"purpose"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	InterestRate   float64 `json:"interestRate"`
	TotalRepayment float64 `json:"totalRepayment"`
}

func (h *BankHandler) ApplyForLoan(c *gin.Context) {
	var req loanApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id := h.Store.AddLoanApplication(application.NewLoanApplication{
		Type:           req.Type,
		Amount:         req.Amount,
		Term:           req.Term,
		Purpose:        req.Purpose,
		Status:         entity.LoanSubmitted,
		MonthlyPayment: req.MonthlyPayment,
		InterestRate:   req.InterestRate,
		TotalRepayment: req.TotalRepayment,
	})
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "loan application submitted")
}

type loanStatusRequest struct {
	Status entity.LoanStatus `json:"status" binding:"required,oneof=Draft Submitted 'Under Review' Approved Rejected"`
}

func (h *BankHandler) UpdateLoanStatus(c *gin.Context) {
	var req loanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.Store.UpdateLoanApplicationStatus(c.Param("id"), req.Status)
	response.Success(c, http.StatusOK, gin.H{"status": req.Status}, "loan status updated")
}

// --- settings ---

func (h *BankHandler) GetSettings(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Store.GetSettings(), "settings")
}

func (h *BankHandler) UpdateSettings(c *gin.Context) {
	var req application.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.Store.UpdateSettings(req)
	response.Success(c, http.StatusOK, h.Store.GetSettings(), "settings updated")
}

// --- account ---

type registerAccountRequest struct {
	Name          string `json:"name" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	PIN           string `json:"pin" binding:"required,min=4"`
}

func (h *BankHandler) RegisterAccount(c *gin.Context) {
	var req registerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.Store.RegisterNewAccount(application.RegisterAccountInput{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Email:         req.Email,
		Phone:         req.Phone,
		PIN:           req.PIN,
	})
	response.Success(c, http.StatusCreated, h.Store.GetUserData(), "account registered")
}

func (h *BankHandler) AccountExists(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"exists": h.Store.HasExistingAccount()}, "account check")
}

// --- data lifecycle ---

func (h *BankHandler) ExportData(c *gin.Context) {
	b, err := h.Store.ExportData()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to export data", nil)
		return
	}
	c.Data(http.StatusOK, "application/json", b)
}

func (h *BankHandler) ImportData(c *gin.Context) {
	b, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "unreadable body", nil)
		return
	}
	if !h.Store.ImportData(b) {
		response.Error(c, http.StatusBadRequest, "invalid snapshot; existing data left untouched", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"imported": true}, "data imported")
}

func (h *BankHandler) ClearData(c *gin.Context) {
	h.Store.ClearAllData()
	response.Success(c, http.StatusOK, gin.H{"cleared": true}, "data reset to defaults")
}
