package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/aidigitalcashout-cell/v0-ecobank/internal/interface/http"
)

// BankModule wires the store-facing routes: profile, transactions,
// beneficiaries, notifications, loans, settings, account lifecycle and the
// snapshot import/export commands.
type BankModule struct {
	Handler *handlers.BankHandler
}

func NewBankModule(h *handlers.BankHandler) *BankModule {
	return &BankModule{Handler: h}
}

func (m *BankModule) Register(rg *gin.RouterGroup) {
	rg.GET("/profile", m.Handler.GetProfile)
	rg.PUT("/profile", m.Handler.UpdateProfile)
	rg.PUT("/profile/balance", m.Handler.UpdateBalance)
	rg.POST("/profile/picture", m.Handler.UploadProfilePicture)

	rg.GET("/transactions", m.Handler.ListTransactions)
	rg.GET("/transactions/:id", m.Handler.GetTransaction)
	rg.POST("/transfers", m.Handler.CreateTransfer)

	rg.GET("/beneficiaries", m.Handler.ListBeneficiaries)
	rg.POST("/beneficiaries", m.Handler.AddBeneficiary)
	rg.GET("/beneficiaries/lookup", m.Handler.FindBeneficiary)

	rg.GET("/notifications", m.Handler.ListNotifications)
	rg.GET("/notifications/unread-count", m.Handler.UnreadNotificationCount)
	rg.POST("/notifications/:id/read", m.Handler.MarkNotificationRead)

	rg.GET("/loans", m.Handler.ListLoanApplications)
	rg.POST("/loans", m.Handler.ApplyForLoan)
	rg.PUT("/loans/:id/status", m.Handler.UpdateLoanStatus)

	rg.GET("/settings", m.Handler.GetSettings)
	rg.PUT("/settings", m.Handler.UpdateSettings)

	rg.POST("/account/register", m.Handler.RegisterAccount)
	rg.GET("/account/exists", m.Handler.AccountExists)

	rg.GET("/data/export", m.Handler.ExportData)
	rg.POST("/data/import", m.Handler.ImportData)
	rg.POST("/data/clear", m.Handler.ClearData)
}
