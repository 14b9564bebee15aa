// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level, CORS, body limits);
// AppConfig is everything specific to the leaderboard service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// ResetTimeZone is the IANA zone in which daily targets roll over and the
	// monthly target keys its month. All watermark dates are computed here.
	ResetTimeZone string

	// AdminEmail, when set, is promoted to admin at startup. This is how the
	// first admin account is bootstrapped on a fresh database.
	AdminEmail string

	// AllowRegistration toggles the public self-service register endpoint.
	AllowRegistration bool
}
