// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	authapifeature "github.com/salesboard/salesboard/internal/app/features/authapi"
	healthfeature "github.com/salesboard/salesboard/internal/app/features/health"
	leaderboardfeature "github.com/salesboard/salesboard/internal/app/features/leaderboard"
	membersfeature "github.com/salesboard/salesboard/internal/app/features/members"
	profilefeature "github.com/salesboard/salesboard/internal/app/features/profile"
	settingsfeature "github.com/salesboard/salesboard/internal/app/features/settings"
	notestore "github.com/salesboard/salesboard/internal/app/store/notes"
	settingsstore "github.com/salesboard/salesboard/internal/app/store/settings"
	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"github.com/salesboard/salesboard/internal/app/system/auth"
	"github.com/salesboard/salesboard/internal/app/system/requestid"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The JSON API is mounted under /api;
// /health stays at the root for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase, deps.Clock)
	settings := settingsstore.New(deps.MongoDatabase, deps.Clock)
	notes := notestore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// Request IDs + structured access log, then session loading, for all routes.
	r.Use(requestid.Middleware(logger))
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		authHandler := authapifeature.NewHandler(users, sessionMgr, logger)
		if appCfg.AllowRegistration {
			api.Mount("/auth", authapifeature.Routes(authHandler))
		} else {
			api.Mount("/auth", authapifeature.RoutesWithoutRegistration(authHandler))
		}

		lbHandler := leaderboardfeature.NewHandler(users, logger)
		api.Mount("/leaderboard", leaderboardfeature.Routes(lbHandler))

		profileHandler := profilefeature.NewHandler(users, notes, logger)
		api.Mount("/profile", profilefeature.Routes(profileHandler))

		membersHandler := membersfeature.NewHandler(users, logger)
		api.Mount("/users", membersfeature.Routes(membersHandler))

		settingsHandler := settingsfeature.NewHandler(settings, logger)
		api.Mount("/settings", settingsfeature.Routes(settingsHandler))
	})

	return r, nil
}
