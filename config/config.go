package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSQLitePath         = "smokebreak.db"
	defaultBusyTimeout        = 5 * time.Second
	defaultExpiryWindow       = 10 * time.Minute
	defaultTokenTTL           = time.Hour
	defaultRemoteDriver       = "mem"
	defaultIdentityProvider   = "local"
	defaultWSPingInterval     = 30 * time.Second
	defaultWSWriteTimeout     = 10 * time.Second
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

	// SQLite configuration for the local cache store
	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	// RemoteStore configuration for the authoritative document store
	RemoteStore *RemoteStoreConfig `json:"remoteStore" yaml:"remoteStore"`

	// Identity configuration for sign-in and token verification
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for push notifications and the firebase identity provider
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for group invite QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for invitation events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Invitation configuration for the break invitation lifecycle
	Invitation *InvitationConfig `json:"invitation" yaml:"invitation"`

	// Scheduler configuration for the optional background sweep
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// WebSocket configuration for view-model streams
	WebSocket *WebSocketConfig `json:"websocket" yaml:"websocket"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SQLiteConfig defines the local cache database
type SQLiteConfig struct {
	// Path to the database file, or a full DSN starting with "file:"
	Path            string        `json:"path" yaml:"path"`
	BusyTimeout     time.Duration `json:"busyTimeout" yaml:"busyTimeout"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`

	// Number of read-only connections registered with dbresolver (0 disables)
	ReadReplicas int `json:"readReplicas" yaml:"readReplicas"`

	// Queries slower than this are logged as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RemoteStoreConfig defines the remote document store
type RemoteStoreConfig struct {
	// Driver is "mem" for an in-process store or "firestore"
	Driver    string `json:"driver" yaml:"driver"`
	ProjectID string `json:"projectId" yaml:"projectId"`
}

// IdentityConfig defines the identity provider
type IdentityConfig struct {
	// Provider is "local" (bcrypt + JWT) or "firebase"
	Provider string `json:"provider" yaml:"provider"`

	// Firebase Web API key, used for password and Google sign-in
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Google OAuth client ID used to verify Google ID tokens with the local provider
	GoogleClientID string `json:"googleClientId" yaml:"googleClientId"`

	// Lifetime of tokens issued by the local provider
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// InvitationConfig defines the break invitation lifecycle settings
type InvitationConfig struct {
	// How long a new invitation stays open
	ExpiryWindow time.Duration `json:"expiryWindow" yaml:"expiryWindow"`

	// IANA time zone used for "today" counters, defaults to the server zone
	Timezone string `json:"timezone" yaml:"timezone"`
}

// SchedulerConfig defines the optional background expiry sweep
type SchedulerConfig struct {
	// Sweep cadence; zero keeps the sweep on-demand only
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// Invitations and sessions older than this are pruned on each sweep (zero disables)
	Retention time.Duration `json:"retention" yaml:"retention"`
}

// WebSocketConfig defines view-model stream settings
type WebSocketConfig struct {
	PingInterval time.Duration `json:"pingInterval" yaml:"pingInterval"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SQLITE_BUSYTIMEOUT -> sqlite.busyTimeout (not sqlite.busytimeout)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings that would otherwise be silently replaced at runtime.
func (c *Config) Validate() error {
	if c.Invitation != nil && c.Invitation.Timezone != "" {
		if _, err := time.LoadLocation(c.Invitation.Timezone); err != nil {
			return errors.Wrapf(err, "invalid invitation.timezone %q", c.Invitation.Timezone)
		}
	}

	return nil
}

// ApplyDefaults fills unset sections and values.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.SQLite == nil {
		cfg.SQLite = &SQLiteConfig{}
	}
	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = defaultSQLitePath
	}
	if cfg.SQLite.BusyTimeout <= 0 {
		cfg.SQLite.BusyTimeout = defaultBusyTimeout
	}

	if cfg.RemoteStore == nil {
		cfg.RemoteStore = &RemoteStoreConfig{}
	}
	if cfg.RemoteStore.Driver == "" {
		cfg.RemoteStore.Driver = defaultRemoteDriver
	}

	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if cfg.Identity.Provider == "" {
		cfg.Identity.Provider = defaultIdentityProvider
	}
	if cfg.Identity.TokenTTL <= 0 {
		cfg.Identity.TokenTTL = defaultTokenTTL
	}

	if cfg.Invitation == nil {
		cfg.Invitation = &InvitationConfig{}
	}
	if cfg.Invitation.ExpiryWindow <= 0 {
		cfg.Invitation.ExpiryWindow = defaultExpiryWindow
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}

	if cfg.WebSocket == nil {
		cfg.WebSocket = &WebSocketConfig{}
	}
	if cfg.WebSocket.PingInterval <= 0 {
		cfg.WebSocket.PingInterval = defaultWSPingInterval
	}
	if cfg.WebSocket.WriteTimeout <= 0 {
		cfg.WebSocket.WriteTimeout = defaultWSWriteTimeout
	}
}

// Location returns the zone used for daily counters. Validate has already rejected unknown zones.
func (c *InvitationConfig) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}

	return loc
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
