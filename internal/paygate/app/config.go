package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Development fallbacks. Refused outright when ENV=prod.
const (
	devL402Secret    = "dev-insecure-l402-secret"
	devSessionSecret = "dev-insecure-session-secret"
)

type Config struct {
	L402Secret    string // HMAC secret for macaroon signing (required in prod)
	SessionSecret string // HMAC secret for publisher session JWTs (required in prod)
	Issuer        string // Issuer claim for publisher session tokens

	DatabaseFile string // Path to SQLite database file (default: ./paygate.db)
	PepperFile   string // Path to pepper file for API key hashing (default: ./pepper)

	LNDHost         string        // Platform node gRPC host:port; empty disables the platform path
	LNDTLSCertPath  string        // Path to the node's TLS certificate
	LNDMacaroonPath string        // Path to an invoice macaroon for the node
	LNDTimeout      time.Duration // Per-call node timeout (default: 10s)

	LightningNetwork   string        // Chain for bolt11 decoding (mainnet, testnet, regtest, simnet)
	LNURLTimeout       time.Duration // Per-call LNURL HTTP timeout (default: 10s)
	LNURLAllowInsecure bool          // Allow plain-http LNURL endpoints (dev only)

	ListingFeeBaseSats   int64         // Flat part of the publish listing fee (default: 10)
	ListingFeePercentBps int64         // Percent part in basis points (default: 100 = 1%)
	PendingPublishTTL    time.Duration // How long an unpaid publish waits (default: 1h)
	SessionTTL           time.Duration // Publisher session token lifetime (default: 1h)

	BootstrapPublisher string // Optional: publisher name to create on first boot

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		L402Secret:    getEnvOrDefault("PAYGATE_L402_SECRET", devL402Secret),
		SessionSecret: getEnvOrDefault("PAYGATE_SESSION_SECRET", devSessionSecret),
		Issuer:        getEnvOrDefault("PAYGATE_ISSUER", "paygate"),

		DatabaseFile: getEnvOrDefault("PAYGATE_DATABASE_FILE", "paygate.db"),
		PepperFile:   getEnvOrDefault("PAYGATE_PEPPER_FILE", "pepper"),

		LNDHost:         os.Getenv("PAYGATE_LND_HOST"),
		LNDTLSCertPath:  os.Getenv("PAYGATE_LND_TLS_CERT"),
		LNDMacaroonPath: os.Getenv("PAYGATE_LND_MACAROON"),
		LNDTimeout:      getEnvDurationOrDefault("PAYGATE_LND_TIMEOUT", 10*time.Second),

		LightningNetwork:   getEnvOrDefault("PAYGATE_LIGHTNING_NETWORK", "mainnet"),
		LNURLTimeout:       getEnvDurationOrDefault("PAYGATE_LNURL_TIMEOUT", 10*time.Second),
		LNURLAllowInsecure: getEnvBoolOrDefault("PAYGATE_LNURL_ALLOW_INSECURE", false),

		ListingFeeBaseSats:   int64(getEnvIntOrDefault("PAYGATE_LISTING_FEE_BASE_SATS", 10)),
		ListingFeePercentBps: int64(getEnvIntOrDefault("PAYGATE_LISTING_FEE_PERCENT_BPS", 100)),
		PendingPublishTTL:    getEnvDurationOrDefault("PAYGATE_PENDING_PUBLISH_TTL", 1*time.Hour),
		SessionTTL:           getEnvDurationOrDefault("PAYGATE_SESSION_TTL", 1*time.Hour),

		BootstrapPublisher: os.Getenv("PAYGATE_BOOTSTRAP_PUBLISHER"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate rejects configurations that must never reach production.
func (c Config) Validate() error {
	if c.Env == "prod" {
		if c.L402Secret == devL402Secret {
			return errors.New("PAYGATE_L402_SECRET must be set in prod")
		}
		if c.SessionSecret == devSessionSecret {
			return errors.New("PAYGATE_SESSION_SECRET must be set in prod")
		}
		if c.LNURLAllowInsecure {
			return errors.New("PAYGATE_LNURL_ALLOW_INSECURE is not allowed in prod")
		}
	}
	return nil
}

// SecretConfigured reports whether the macaroon secret is a real one rather
// than the dev fallback. Surfaced through /readyz.
func (c Config) SecretConfigured() bool {
	return c.L402Secret != devL402Secret
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
