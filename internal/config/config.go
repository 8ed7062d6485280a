package config

import (
	"strings"
	"time"
)

// Config is the root configuration of the backend service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	VAPI      VAPIConfig      `yaml:"vapi"`
	Speech    SpeechConfig    `yaml:"speech"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// EdgeConfig is the root configuration of the edge proxy.
type EdgeConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Edge    EdgeSettings  `yaml:"edge"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ToolConfig is the configuration of the maintenance commands.
type ToolConfig struct {
	Database   DatabaseConfig `yaml:"database"`
	Log        LogConfig      `yaml:"log"`
	BcryptCost int            `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST" env-default:"10"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"Content-Disposition,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectWait     time.Duration `yaml:"connect_wait"       env:"DATABASE_CONNECT_WAIT"       env-default:"10s"`
}

// AuthConfig holds token signing and cookie settings.
// Keys are base64-encoded PEM blocks.
type AuthConfig struct {
	PrivateKeyBase64 string        `yaml:"jwt_private_key_base64" env:"JWT_PRIVATE_KEY_BASE64" env-required:"true"`
	PublicKeyBase64  string        `yaml:"jwt_public_key_base64"  env:"JWT_PUBLIC_KEY_BASE64"  env-required:"true"`
	Issuer           string        `yaml:"jwt_issuer"             env:"AUTH_JWT_ISSUER"        env-default:"receptionist"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"       env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"      env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	GuestTokenTTL    time.Duration `yaml:"guest_token_ttl"        env:"AUTH_GUEST_TOKEN_TTL"   env-default:"2h"`
	CookieDomain     string        `yaml:"cookie_domain"          env:"AUTH_COOKIE_DOMAIN"`
	CookieSecure     bool          `yaml:"cookie_secure"          env:"AUTH_COOKIE_SECURE"     env-default:"true"`
	BcryptCost       int           `yaml:"bcrypt_cost"            env:"AUTH_BCRYPT_COST"       env-default:"10"`
}

// VAPIConfig holds the voice platform credentials and sync tuning.
type VAPIConfig struct {
	APIKey         string        `yaml:"api_key"          env:"VAPI_API_KEY"`
	WebhookSecret  string        `yaml:"webhook_secret"   env:"VAPI_WEBHOOK_SECRET"`
	BaseURL        string        `yaml:"base_url"         env:"VAPI_BASE_URL"          env-default:"https://api.vapi.ai"`
	RequestTimeout time.Duration `yaml:"request_timeout"  env:"VAPI_REQUEST_TIMEOUT"   env-default:"15s"`
	SyncWorkers    int           `yaml:"sync_workers"     env:"VAPI_SYNC_WORKERS"      env-default:"4"`
	SyncMaxElapsed time.Duration `yaml:"sync_max_elapsed" env:"VAPI_SYNC_MAX_ELAPSED"  env-default:"2m"`
	SyncQueueSize  int           `yaml:"sync_queue_size"  env:"VAPI_SYNC_QUEUE_SIZE"   env-default:"64"`
	ServerURL      string        `yaml:"server_url"       env:"VAPI_SERVER_URL"`
}

// Enabled reports whether an API key is configured.
func (c VAPIConfig) Enabled() bool { return c.APIKey != "" }

// SpeechConfig holds the speech vendor settings.
type SpeechConfig struct {
	APIKey         string        `yaml:"api_key"          env:"ELEVENLABS_API_KEY"`
	BaseURL        string        `yaml:"base_url"         env:"ELEVENLABS_BASE_URL"        env-default:"https://api.elevenlabs.io"`
	DefaultVoiceID string        `yaml:"default_voice_id" env:"ELEVENLABS_DEFAULT_VOICE"   env-default:"21m00Tcm4TlvDq8ikWAM"`
	TTSModel       string        `yaml:"tts_model"        env:"ELEVENLABS_TTS_MODEL"       env-default:"eleven_multilingual_v2"`
	STTModel       string        `yaml:"stt_model"        env:"ELEVENLABS_STT_MODEL"       env-default:"scribe_v1"`
	RequestTimeout time.Duration `yaml:"request_timeout"  env:"ELEVENLABS_REQUEST_TIMEOUT" env-default:"30s"`
	MaxAudioBytes  int64         `yaml:"max_audio_bytes"  env:"VOICE_MAX_AUDIO_BYTES"      env-default:"10485760"`
}

// Enabled reports whether an API key is configured.
func (c SpeechConfig) Enabled() bool { return c.APIKey != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for sensitive endpoints.
type RateLimitConfig struct {
	LoginPerMinute   int           `yaml:"login_per_minute"   env:"RATE_LIMIT_LOGIN"    env-default:"10"`
	GuestPerMinute   int           `yaml:"guest_per_minute"   env:"RATE_LIMIT_GUEST"    env-default:"20"`
	WebhookPerMinute int           `yaml:"webhook_per_minute" env:"RATE_LIMIT_WEBHOOK"  env-default:"600"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP"  env-default:"5m"`
}

// EdgeSettings holds the proxy-specific settings of the edge binary.
type EdgeSettings struct {
	APIInternalURL  string        `yaml:"api_internal_url"      env:"API_INTERNAL_URL"`
	PublicAPIURL    string        `yaml:"public_api_url"        env:"NEXT_PUBLIC_API_URL"`
	PublicKeyBase64 string        `yaml:"jwt_public_key_base64" env:"JWT_PUBLIC_KEY_BASE64" env-required:"true"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"      env:"EDGE_UPSTREAM_TIMEOUT" env-default:"10s"`
	CookieSecure    bool          `yaml:"cookie_secure"         env:"EDGE_COOKIE_SECURE"    env-default:"true"`
	CookieDomain    string        `yaml:"cookie_domain"         env:"EDGE_COOKIE_DOMAIN"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"        env:"EDGE_MAX_BODY_BYTES"   env-default:"20971520"`
}

// APIBaseURL returns the backend base URL without a trailing slash.
// The internal URL wins over the public one.
func (e EdgeSettings) APIBaseURL() string {
	u := e.APIInternalURL
	if u == "" {
		u = e.PublicAPIURL
	}
	return strings.TrimRight(u, "/")
}

// MetricsConfig holds the prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
