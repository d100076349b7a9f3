package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey holds the HMAC secret shared with the identity provider that issues access tokens.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for push notifications (worker only)
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for push event fan-out
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis backs the reservation rate limiter; optional
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Marketplace *MarketplaceConfig `json:"marketplace" yaml:"marketplace"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines the transport used to hand push events to the worker
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP connection URL and durable queue name (for rabbitmq provider)
	RabbitMQURL string `json:"rabbitmqUrl" yaml:"rabbitmqUrl"`
	Queue       string `json:"queue" yaml:"queue"`
}

// RedisConfig defines the Redis connection used by the rate limiter
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RateLimitConfig defines the token bucket applied to reservation requests
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
}

// MarketplaceConfig tunes search, reservation and live event delivery
type MarketplaceConfig struct {
	// Radius used when a nearby search omits one
	DefaultRadiusMeters float64 `json:"defaultRadiusMeters" yaml:"defaultRadiusMeters"`

	// Upper bound applied to caller-supplied nearby radii
	MaxNearbyRadiusMeters float64 `json:"maxNearbyRadiusMeters" yaml:"maxNearbyRadiusMeters"`

	// Radius used by the "all" search mode
	AllModeRadiusMeters float64 `json:"allModeRadiusMeters" yaml:"allModeRadiusMeters"`

	// Maximum number of offers returned by the "all" search mode
	AllModeResultCap int `json:"allModeResultCap" yaml:"allModeResultCap"`

	SearchTimeout time.Duration `json:"searchTimeout" yaml:"searchTimeout"`

	// Grid cell size in kilometers for the merchant spatial index
	GridCellSizeKm float64 `json:"gridCellSizeKm" yaml:"gridCellSizeKm"`

	// Maximum wait for the per-offer reservation lock
	LockTimeout time.Duration `json:"lockTimeout" yaml:"lockTimeout"`

	ReserveMaxRetries   int           `json:"reserveMaxRetries" yaml:"reserveMaxRetries"`
	ReserveRetryBackoff time.Duration `json:"reserveRetryBackoff" yaml:"reserveRetryBackoff"`

	// Minimum interval between live offer updates delivered to one session
	ThrottleInterval time.Duration `json:"throttleInterval" yaml:"throttleInterval"`

	EventQueueSize    int           `json:"eventQueueSize" yaml:"eventQueueSize"`
	SessionBufferSize int           `json:"sessionBufferSize" yaml:"sessionBufferSize"`
	PushTimeout       time.Duration `json:"pushTimeout" yaml:"pushTimeout"`
	SinkTimeout       time.Duration `json:"sinkTimeout" yaml:"sinkTimeout"`
	StreamHeartbeat   time.Duration `json:"streamHeartbeat" yaml:"streamHeartbeat"`

	ExpirySweepInterval time.Duration `json:"expirySweepInterval" yaml:"expirySweepInterval"`

	NotificationListLimit int `json:"notificationListLimit" yaml:"notificationListLimit"`
}

// DefaultMarketplaceConfig returns the values used when the marketplace section is absent or partial.
func DefaultMarketplaceConfig() MarketplaceConfig {
	return MarketplaceConfig{
		DefaultRadiusMeters:   5000,
		MaxNearbyRadiusMeters: 50000,
		AllModeRadiusMeters:   2000000,
		AllModeResultCap:      100,
		SearchTimeout:         3 * time.Second,
		GridCellSizeKm:        2,
		LockTimeout:           2 * time.Second,
		ReserveMaxRetries:     3,
		ReserveRetryBackoff:   50 * time.Millisecond,
		ThrottleInterval:      300 * time.Millisecond,
		EventQueueSize:        1024,
		SessionBufferSize:     32,
		PushTimeout:           10 * time.Second,
		SinkTimeout:           5 * time.Second,
		StreamHeartbeat:       25 * time.Second,
		ExpirySweepInterval:   time.Minute,
		NotificationListLimit: 50,
	}
}

// WithDefaults fills zero fields from DefaultMarketplaceConfig.
func (m *MarketplaceConfig) WithDefaults() *MarketplaceConfig {
	def := DefaultMarketplaceConfig()
	if m == nil {
		return &def
	}

	out := *m
	if out.DefaultRadiusMeters <= 0 {
		out.DefaultRadiusMeters = def.DefaultRadiusMeters
	}
	if out.MaxNearbyRadiusMeters <= 0 {
		out.MaxNearbyRadiusMeters = def.MaxNearbyRadiusMeters
	}
	if out.AllModeRadiusMeters <= 0 {
		out.AllModeRadiusMeters = def.AllModeRadiusMeters
	}
	if out.AllModeResultCap <= 0 {
		out.AllModeResultCap = def.AllModeResultCap
	}
	if out.SearchTimeout <= 0 {
		out.SearchTimeout = def.SearchTimeout
	}
	if out.GridCellSizeKm <= 0 {
		out.GridCellSizeKm = def.GridCellSizeKm
	}
	if out.LockTimeout <= 0 {
		out.LockTimeout = def.LockTimeout
	}
	if out.ReserveMaxRetries < 0 {
		out.ReserveMaxRetries = 0
	}
	if out.ReserveRetryBackoff <= 0 {
		out.ReserveRetryBackoff = def.ReserveRetryBackoff
	}
	if out.ThrottleInterval <= 0 {
		out.ThrottleInterval = def.ThrottleInterval
	}
	if out.EventQueueSize <= 0 {
		out.EventQueueSize = def.EventQueueSize
	}
	if out.SessionBufferSize <= 0 {
		out.SessionBufferSize = def.SessionBufferSize
	}
	if out.PushTimeout <= 0 {
		out.PushTimeout = def.PushTimeout
	}
	if out.SinkTimeout <= 0 {
		out.SinkTimeout = def.SinkTimeout
	}
	if out.StreamHeartbeat <= 0 {
		out.StreamHeartbeat = def.StreamHeartbeat
	}
	if out.ExpirySweepInterval <= 0 {
		out.ExpirySweepInterval = def.ExpirySweepInterval
	}
	if out.NotificationListLimit <= 0 {
		out.NotificationListLimit = def.NotificationListLimit
	}

	return &out
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Marketplace = cfg.Marketplace.WithDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
