package container

import (
	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/aidigitalcashout-cell/v0-ecobank/config"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/application"
	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/sms"
)

// app-level container to share constructed components across packages.
// The composition root (cmd/main.go) sets these once; router modules read
// them when wiring. This is also where the data store's single-instance
// guarantee lives.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	gcsClient   *storage.Client

	dataStore *application.DataStore

	// routeProvider backs the HTTP messaging boundary; nil when credentials
	// are unset so the routes can answer 500 per the contract.
	routeProvider sms.Provider
)

func SetConfig(c *config.Config)  { cfg = c }
func GetConfig() *config.Config   { return cfg }
func SetLogger(l *logrus.Logger)  { logger = l }
func GetLogger() *logrus.Logger   { return logger }
func SetRedis(r *redis.Client)    { redisClient = r }
func GetRedis() *redis.Client     { return redisClient }
func SetGCS(s *storage.Client)    { gcsClient = s }
func GetGCS() *storage.Client     { return gcsClient }

func SetStore(s *application.DataStore) { dataStore = s }
func GetStore() *application.DataStore  { return dataStore }

func SetRouteProvider(p sms.Provider) { routeProvider = p }
func GetRouteProvider() sms.Provider  { return routeProvider }
