package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidigitalcashout-cell/v0-ecobank/internal/application"
	handlers "github.com/aidigitalcashout-cell/v0-ecobank/internal/interface/http"
)

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func bankRouter(t *testing.T, provider *recordingProvider) (*gin.Engine, *application.DataStore) {
	t.Helper()
	store := application.NewDataStore(application.StoreConfig{StorageKey: "test"}, nil, provider, quietLogger())
	t.Cleanup(store.Close)

	h := handlers.NewBankHandler(store, nil, "", quietLogger())
	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)
		api.PUT("/profile/balance", h.UpdateBalance)
		api.POST("/profile/picture", h.UploadProfilePicture)
		api.GET("/transactions", h.ListTransactions)
		api.GET("/transactions/:id", h.GetTransaction)
		api.POST("/transfers", h.CreateTransfer)
		api.GET("/beneficiaries", h.ListBeneficiaries)
		api.POST("/beneficiaries", h.AddBeneficiary)
		api.GET("/beneficiaries/lookup", h.FindBeneficiary)
		api.GET("/notifications/unread-count", h.UnreadNotificationCount)
		api.POST("/notifications/:id/read", h.MarkNotificationRead)
		api.POST("/loans", h.ApplyForLoan)
		api.PUT("/loans/:id/status", h.UpdateLoanStatus)
		api.POST("/account/register", h.RegisterAccount)
		api.GET("/account/exists", h.AccountExists)
		api.GET("/data/export", h.ExportData)
		api.POST("/data/import", h.ImportData)
		api.POST("/data/clear", h.ClearData)
	}
	return r, store
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestGetProfile(t *testing.T) {
	r, _ := bankRouter(t, &recordingProvider{})
	w := doRequest(t, r, http.MethodGet, "/api/profile", "")

	require.Equal(t, http.StatusOK, w.Code)
	e := decodeEnvelope(t, w)
	assert.True(t, e.Success)

	var profile struct {
		Name    string  `json:"name"`
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &profile))
	assert.Equal(t, "ADEFEMI JOHN OLAYEMI", profile.Name)
	assert.InDelta(t, 150000.20, profile.Balance, 1e-9)
}

func TestCreateTransfer(t *testing.T) {
	t.Run("debit records and answers 201", func(t *testing.T) {
		p := &recordingProvider{}
		r, store := bankRouter(t, p)
		w := doRequest(t, r, http.MethodPost, "/api/transfers", `{
			"type": "Transfer to other bank",
			"amount": 20000,
			"fee": 30,
			"recipient": "Pedro Banabas",
			"isDebit": true,
			"section": "Today"
		}`)

		require.Equal(t, http.StatusCreated, w.Code)
		e := decodeEnvelope(t, w)
		assert.True(t, e.Success)
		assert.Equal(t, "transaction recorded", e.Message)

		var tx struct {
			ID        string `json:"id"`
			Reference string `json:"reference"`
		}
		require.NoError(t, json.Unmarshal(e.Data, &tx))
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, "TXN"+tx.ID, tx.Reference)

		assert.InDelta(t, 129970.20, store.GetUserData().Balance, 1e-9)
		assert.Len(t, p.sent, 2)
	})

	t.Run("alert failure still answers 201", func(t *testing.T) {
		p := &recordingProvider{err: assert.AnError}
		r, store := bankRouter(t, p)
		w := doRequest(t, r, http.MethodPost, "/api/transfers", `{
			"type": "Transfer to other bank",
			"amount": 1000,
			"recipient": "Pedro Banabas",
			"isDebit": true
		}`)

		require.Equal(t, http.StatusCreated, w.Code)
		e := decodeEnvelope(t, w)
		assert.Equal(t, "transaction recorded; alert delivery failed", e.Message)
		assert.Len(t, store.GetTransactions(), 3)
	})

	t.Run("missing amount answers 400", func(t *testing.T) {
		r, _ := bankRouter(t, &recordingProvider{})
		w := doRequest(t, r, http.MethodPost, "/api/transfers", `{"type": "Transfer"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, decodeEnvelope(t, w).Success)
	})
}

func TestGetTransactionNotFound(t *testing.T) {
	r, _ := bankRouter(t, &recordingProvider{})
	w := doRequest(t, r, http.MethodGet, "/api/transactions/nope", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	e := decodeEnvelope(t, w)
	assert.False(t, e.Success)
	assert.Equal(t, "transaction not found", e.Message)
}

func TestBeneficiaryLookup(t *testing.T) {
	r, _ := bankRouter(t, &recordingProvider{})

	t.Run("found", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/beneficiaries/lookup?accountNumber=0348483930", "")
		require.Equal(t, http.StatusOK, w.Code)
		var b struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &b))
		assert.Equal(t, "Pedro Banabas", b.Name)
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/beneficiaries/lookup?accountNumber=0000000000", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing query", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/beneficiaries/lookup", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterAccount(t *testing.T) {
	t.Run("valid registration", func(t *testing.T) {
		r, store := bankRouter(t, &recordingProvider{})
		w := doRequest(t, r, http.MethodPost, "/api/account/register", `{
			"name": "Jane Doe",
			"accountNumber": "0011223344",
			"email": "jane@example.com",
			"phone": "+2348010000000",
			"pin": "4321"
		}`)

		require.Equal(t, http.StatusCreated, w.Code)
		u := store.GetUserData()
		assert.Equal(t, "Jane Doe", u.Name)
		assert.InDelta(t, 0, u.Balance, 1e-9)
		assert.Empty(t, store.GetTransactions())
	})

	t.Run("short pin rejected", func(t *testing.T) {
		r, _ := bankRouter(t, &recordingProvider{})
		w := doRequest(t, r, http.MethodPost, "/api/account/register", `{
			"name": "Jane Doe",
			"accountNumber": "0011223344",
			"email": "jane@example.com",
			"phone": "+2348010000000",
			"pin": "12"
		}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad email rejected", func(t *testing.T) {
		r, _ := bankRouter(t, &recordingProvider{})
		w := doRequest(t, r, http.MethodPost, "/api/account/register", `{
			"name": "Jane Doe",
			"accountNumber": "0011223344",
			"email": "not-an-email",
			"phone": "+2348010000000",
			"pin": "4321"
		}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateBalanceRequiresValue(t *testing.T) {
	r, store := bankRouter(t, &recordingProvider{})

	w := doRequest(t, r, http.MethodPut, "/api/profile/balance", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Zero is a legal value and must pass the required check.
	w = doRequest(t, r, http.MethodPut, "/api/profile/balance", `{"balance": 0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 0, store.GetUserData().Balance, 1e-9)
}

func TestUpdateLoanStatusValidation(t *testing.T) {
	r, _ := bankRouter(t, &recordingProvider{})

	w := doRequest(t, r, http.MethodPut, "/api/loans/1/status", `{"status": "Bogus"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPut, "/api/loans/1/status", `{"status": "Under Review"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestImportDataInvalidPayload(t *testing.T) {
	r, store := bankRouter(t, &recordingProvider{})
	before, err := store.ExportData()
	require.NoError(t, err)

	w := doRequest(t, r, http.MethodPost, "/api/data/import", `{broken`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	after, err := store.ExportData()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestExportImportRoundTripOverHTTP(t *testing.T) {
	r, _ := bankRouter(t, &recordingProvider{})

	exported := doRequest(t, r, http.MethodGet, "/api/data/export", "")
	require.Equal(t, http.StatusOK, exported.Code)

	w := doRequest(t, r, http.MethodPost, "/api/data/import", exported.Body.String())
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
}

func TestClearData(t *testing.T) {
	r, store := bankRouter(t, &recordingProvider{})
	store.UpdateBalance(5)

	w := doRequest(t, r, http.MethodPost, "/api/data/clear", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 150000.20, store.GetUserData().Balance, 1e-9)
}

func TestAccountExists(t *testing.T) {
	r, _ := bankRouter(t, &recordingProvider{})
	w := doRequest(t, r, http.MethodGet, "/api/account/exists", "")

	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Exists bool `json:"exists"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	assert.True(t, data.Exists)
}

func TestUploadProfilePictureUnconfigured(t *testing.T) {
	r, _ := bankRouter(t, &recordingProvider{})
	w := doRequest(t, r, http.MethodPost, "/api/profile/picture", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
