package router

import (
	"github.com/oksasatya/lightbnb-api/internal/application"
	"github.com/oksasatya/lightbnb-api/internal/container"
	repo "github.com/oksasatya/lightbnb-api/internal/domain/repository"
	pginfra "github.com/oksasatya/lightbnb-api/internal/infrastructure/postgres"
	"github.com/oksasatya/lightbnb-api/internal/infrastructure/redisstore"
	"github.com/oksasatya/lightbnb-api/internal/infrastructure/search"
	"github.com/oksasatya/lightbnb-api/internal/infrastructure/storage"
	handlers "github.com/oksasatya/lightbnb-api/internal/interface/http"
	"github.com/oksasatya/lightbnb-api/internal/interface/middleware"
	"github.com/oksasatya/lightbnb-api/internal/router/modules"
)

// Services are the application services shared by modules and middleware.
type Services struct {
	Users        *application.UserService
	Sessions     *application.SessionService
	Properties   *application.PropertyService
	Reservations *application.ReservationService
}

// Repositories are the persistence ports behind Services.
type Repositories struct {
	Users        repo.UserRepository
	Sessions     repo.SessionRepository
	Properties   repo.PropertyRepository
	Reservations repo.ReservationRepository
}

// StoreRepositories returns the Postgres and Redis backed repositories.
func StoreRepositories(c *container.Container) Repositories {
	timeout := c.Config.DBQueryTimeout
	return Repositories{
		Users:        pginfra.NewUserRepository(c.PGPool, timeout),
		Sessions:     redisstore.NewSessionStore(c.Redis),
		Properties:   pginfra.NewPropertyRepository(c.PGPool, timeout),
		Reservations: pginfra.NewReservationRepository(c.PGPool, timeout),
	}
}

// BuildServices wires repos and the optional backends into services.
// Optional ports stay nil interfaces when their backend is absent.
func BuildServices(c *container.Container, repos Repositories) Services {
	cfg := c.Config

	var mail application.EmailPublisher
	if c.RabbitPub != nil && cfg.MailSendEnabled {
		mail = c.RabbitPub
	}
	var index application.PropertyIndex
	if c.ES != nil {
		index = search.NewPropertyIndex(c.ES, cfg.ESPropertiesIndex, c.Logger)
	}
	var photos application.PhotoStore
	if c.GCS != nil && cfg.GCSBucket != "" {
		photos = storage.NewPhotoStore(c.GCS, cfg.GCSBucket)
	}

	return Services{
		Users:        application.NewUserService(repos.Users, cfg.BcryptCost, mail, cfg.AppName, c.Logger),
		Sessions:     application.NewSessionService(repos.Sessions, c.Tokens),
		Properties:   application.NewPropertyService(repos.Properties, index, photos, c.Logger),
		Reservations: application.NewReservationService(repos.Reservations),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	Mount(r, c, BuildServices(c, StoreRepositories(c)))
}

// Mount adds the session middleware and every module backed by svc.
func Mount(r *Registry, c *container.Container, svc Services) {
	cfg := c.Config

	var allow middleware.AllowFunc
	if cfg.Env == "development" {
		allow = middleware.AllowPrivateIP()
	}

	r.Use(middleware.LoadSession(svc.Sessions, c.Logger))

	userHandler := handlers.NewUserHandler(svc.Users, svc.Sessions, c.Logger, cfg.CookieDomain, cfg.CookieSecure)
	r.AddRoot(modules.NewUserModule(userHandler, c.Redis, allow, c.Logger))
	r.Add(modules.NewPropertyModule(handlers.NewPropertyHandler(svc.Properties, c.Logger), c.Redis, c.Logger))
	r.Add(modules.NewReservationModule(handlers.NewReservationHandler(svc.Reservations, c.Logger)))
}
