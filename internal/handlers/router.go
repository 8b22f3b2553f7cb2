package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/sigma-tutor/internal/middlewares"
)

// SessionService is the session manager seen by the router.
type SessionService interface {
	middlewares.SessionLoader
	LoginManager
}

// UserService covers the user operations exposed over HTTP.
type UserService interface {
	UserCreator
	UserGetter
	UserUpdater
	UserDeleter
}

// SkillService covers the skill operations exposed over HTTP.
type SkillService interface {
	SkillCreator
	SkillLister
	SkillGetter
	SkillDeleter
}

// ProgressService covers the progress operations exposed over HTTP.
type ProgressService interface {
	ProgressGetter
	ProgressUpdater
}

// QuestionLogService covers the question log operations exposed over HTTP.
type QuestionLogService interface {
	QuestionLogCreator
	QuestionLogReader
}

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	DB         *sqlx.DB // per-request transactions of mutating API calls; nil disables them
	Sessions   SessionService
	Auth       Authenticator
	Users      UserService
	Skills     SkillService
	Progress   ProgressService
	Logs       QuestionLogService
	Renderer   *Renderer
	SwaggerURL string
}

// NewRouter builds the HTTP routes of the application.
func NewRouter(cfg RouterConfig) http.Handler {
	tx := func(next http.Handler) http.Handler { return next }
	if cfg.DB != nil {
		tx = middlewares.TxMiddleware(cfg.DB)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/health", NewHealthHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(cfg.Sessions, cfg.Users))

		r.Get("/", NewIndexHandler(cfg.Sessions, cfg.Renderer))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/login", NewLoginPageHandler(cfg.Sessions, cfg.Renderer))
			r.Post("/login", NewLoginHandler(cfg.Auth, cfg.Sessions, cfg.Renderer))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireLogin(cfg.Sessions))
				r.Get("/logout", NewLogoutHandler(cfg.Sessions))
				r.Get("/profile", NewProfileHandler())
			})
		})

		r.Route("/api/v1", func(r chi.Router) {
			r.With(tx).Post("/users", NewCreateUserHandler(cfg.Users))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireAPIAuth)

				r.Get("/users/{id}", NewGetUserHandler(cfg.Users))
				r.With(tx).Patch("/users/{id}", NewUpdateUserHandler(cfg.Users))
				r.With(tx).Delete("/users/{id}", NewDeleteUserHandler(cfg.Users))

				r.Get("/skills", NewListSkillsHandler(cfg.Skills))
				r.With(tx).Post("/skills", NewCreateSkillHandler(cfg.Skills))
				r.Get("/skills/by-id/{id}", NewGetSkillByIDHandler(cfg.Skills))
				r.Get("/skills/{skillID}", NewGetSkillHandler(cfg.Skills))
				r.With(tx).Delete("/skills/{skillID}", NewDeleteSkillHandler(cfg.Skills))

				r.With(tx).Get("/progress/{skillID}", NewGetProgressHandler(cfg.Skills, cfg.Progress))
				r.With(tx).Patch("/progress/{skillID}", NewUpdateProgressHandler(cfg.Skills, cfg.Progress))

				r.With(tx).Post("/logs", NewCreateQuestionLogHandler(cfg.Logs))
				r.Get("/logs/{skillID}", NewRecentQuestionLogsHandler(cfg.Skills, cfg.Logs))
			})
		})
	})

	return r
}
