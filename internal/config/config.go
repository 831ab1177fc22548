package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	AuthModeRemote = "remote"
	AuthModeJWT    = "jwt"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Vision   VisionConfig
	Security SecurityConfig
	Events   EventsConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	APIPrefix        string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
	BodyLimit        string
	// TrustedProxies may set X-Forwarded-For; empty means the socket address is the client
	TrustedProxies []*net.IPNet
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// AuthConfig selects how bearer tokens issued by the external auth provider are verified.
type AuthConfig struct {
	Mode           string
	ProviderURL    string
	ProviderAPIKey string
	JWTSecret      []byte
	JWTPublicKey   *rsa.PublicKey
	JWTIssuer      string
	VerifyTimeout  time.Duration
}

type VisionConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	TopP        float64
	TopK        int
	MaxAttempts int
	BackoffBase time.Duration
	Timeout     time.Duration
	// RequestsPerMinute caps outbound model calls across all users; 0 disables the cap
	RequestsPerMinute int
}

// WorstCaseDuration is how long one extraction can take when every attempt times out
func (c *VisionConfig) WorstCaseDuration() time.Duration {
	total := time.Duration(c.MaxAttempts) * c.Timeout
	for attempt := 1; attempt < c.MaxAttempts; attempt++ {
		total += c.BackoffBase << (attempt - 1)
	}
	return total
}

type SecurityConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

type EventsConfig struct {
	AMQPURL  string
	Exchange string
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3001"),
			Host:            getEnv("HOST", ""),
			Environment:     getEnv("ENVIRONMENT", getEnv("NODE_ENV", "development")),
			APIPrefix:       getEnv("API_PREFIX", "/api"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 90*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			BodyLimit:       getEnv("BODY_LIMIT", "10M"),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger"),
			Password:        getEnv("DB_PASSWORD", "ledger"),
			Name:            getEnv("DB_NAME", "receipt_ledger"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
		},
		Auth: AuthConfig{
			Mode:           strings.ToLower(getEnv("AUTH_MODE", AuthModeRemote)),
			ProviderURL:    strings.TrimRight(getEnv("AUTH_PROVIDER_URL", ""), "/"),
			ProviderAPIKey: getEnv("AUTH_PROVIDER_API_KEY", ""),
			JWTIssuer:      getEnv("AUTH_JWT_ISSUER", ""),
			VerifyTimeout:  getDurationEnv("AUTH_VERIFY_TIMEOUT", 10*time.Second),
		},
		Vision: VisionConfig{
			APIKey:      getEnv("VISION_API_KEY", ""),
			BaseURL:     strings.TrimRight(getEnv("VISION_BASE_URL", "https://generativelanguage.googleapis.com"), "/"),
			Model:       getEnv("VISION_MODEL", "gemini-2.0-flash"),
			Temperature: getFloatEnv("VISION_TEMPERATURE", 0.1),
			TopP:        getFloatEnv("VISION_TOP_P", 0.8),
			TopK:        getIntEnv("VISION_TOP_K", 40),
			MaxAttempts: getIntEnv("VISION_MAX_ATTEMPTS", 3),
			BackoffBase: getDurationEnv("VISION_BACKOFF_BASE", 2*time.Second),
			Timeout:     getDurationEnv("VISION_TIMEOUT", 20*time.Second),

			RequestsPerMinute: getIntEnv("VISION_REQUESTS_PER_MINUTE", 60),
		},
		Security: SecurityConfig{
			RateLimitRequests: getIntEnv("API_RATE_LIMIT", 100),
			RateLimitWindow:   getDurationEnv("API_RATE_WINDOW", 15*time.Minute),
		},
		Events: EventsConfig{
			AMQPURL:  getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "expenses"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	trustedProxies, err := parseTrustedProxies(os.Getenv("TRUSTED_PROXIES"))
	if err != nil {
		return nil, err
	}
	config.Server.TrustedProxies = trustedProxies

	if secret := os.Getenv("AUTH_JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = []byte(secret)
	}
	if keyB64 := os.Getenv("AUTH_JWT_PUBLIC_KEY"); keyB64 != "" {
		pemData, err := base64.StdEncoding.DecodeString(keyB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AUTH_JWT_PUBLIC_KEY: %w", err)
		}
		publicKey, err := loadRSAPublicKey(pemData)
		if err != nil {
			return nil, fmt.Errorf("failed to parse AUTH_JWT_PUBLIC_KEY: %w", err)
		}
		config.Auth.JWTPublicKey = publicKey
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.Auth.Mode {
	case AuthModeRemote:
		if c.Auth.ProviderURL == "" {
			return errors.New("AUTH_PROVIDER_URL is required when AUTH_MODE=remote")
		}
	case AuthModeJWT:
		if len(c.Auth.JWTSecret) == 0 && c.Auth.JWTPublicKey == nil {
			return errors.New("AUTH_JWT_SECRET or AUTH_JWT_PUBLIC_KEY is required when AUTH_MODE=jwt")
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.Auth.Mode)
	}

	if c.Vision.MaxAttempts < 1 {
		return errors.New("VISION_MAX_ATTEMPTS must be at least 1")
	}
	if c.Server.WriteTimeout > 0 && c.Vision.WorstCaseDuration() >= c.Server.WriteTimeout {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) must exceed the worst-case receipt extraction time (%s)",
			c.Server.WriteTimeout, c.Vision.WorstCaseDuration())
	}
	if c.IsProduction() && c.Vision.APIKey == "" {
		return errors.New("VISION_API_KEY must be set in production environments")
	}
	if c.Security.RateLimitRequests < 1 || c.Security.RateLimitWindow <= 0 {
		return errors.New("API_RATE_LIMIT and API_RATE_WINDOW must be positive")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Address is the host:port the HTTP server binds to.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins merges FRONTEND_URL with the optional CORS_ALLOW_ORIGINS list
func (c *Config) loadCORSAllowOrigins() []string {
	origins := []string{getEnv("FRONTEND_URL", "http://localhost:3000")}

	if extra := os.Getenv("CORS_ALLOW_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" && origin != origins[0] {
				origins = append(origins, origin)
			}
		}
	}

	slog.Info("CORS allowed origins configured", "origins", origins)
	return origins
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}

// parseTrustedProxies reads a comma-separated list of CIDRs or bare IPs
func parseTrustedProxies(value string) ([]*net.IPNet, error) {
	var proxies []*net.IPNet
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q", entry)
			}
			bits := 128
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 32
			}
			proxies = append(proxies, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}

		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", entry, err)
		}
		proxies = append(proxies, network)
	}
	return proxies, nil
}
