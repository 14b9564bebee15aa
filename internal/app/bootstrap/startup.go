// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// Salesboard uses it to promote the configured admin_email, so a fresh
// deployment has an admin as soon as that account registers (or immediately,
// if it already exists).
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail == "" {
		return nil
	}

	users := userstore.New(deps.MongoDatabase, deps.Clock)
	promoted, err := users.PromoteAdmin(ctx, appCfg.AdminEmail)
	if err != nil {
		return err
	}
	if promoted {
		logger.Info("admin promoted from config", zap.String("email", appCfg.AdminEmail))
	} else {
		logger.Info("admin_email not registered yet; will need manual promotion after registration",
			zap.String("email", appCfg.AdminEmail))
	}
	return nil
}
