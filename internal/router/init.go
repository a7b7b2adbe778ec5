package router

import (
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/container"
	handlers "github.com/aidigitalcashout-cell/v0-ecobank/internal/interface/http"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/router/modules"
)

// InitModules builds each feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	bankHandler := handlers.NewBankHandler(
		container.GetStore(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetLogger(),
	)
	r.Add(modules.NewBankModule(bankHandler))

	smsHandler := handlers.NewSMSHandler(container.GetRouteProvider(), container.GetLogger())
	r.Add(modules.NewSMSModule(smsHandler, cfg.SMSRateLimitPerMin))
}
