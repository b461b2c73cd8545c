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
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath          = "."
	defaultSumUpAuthBase = "https://api.sumup.com"
	defaultSumUpAPIBase  = "https://api.sumup.com"
	defaultHTTPTimeout   = 15 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// App describes where this service and its frontend live; the callback
	// handler redirects browsers back to the frontend connections page.
	App AppConfig `json:"app" yaml:"app"`

	// SumUp holds the provider endpoints and outbound call policy. Base URLs
	// are configurable so tests can point the client at a local fake.
	SumUp SumUpConfig `json:"sumup" yaml:"sumup"`

	// Auth configures verification of the external auth provider's JWTs.
	// Optional: when no secret is set, handlers fall back to explicit user_id.
	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AppConfig defines the service's own public URLs.
type AppConfig struct {
	// BaseURL is this service's externally reachable base URL; the OAuth
	// redirect URI is derived from it.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// FrontendURL is the dashboard UI origin the callback redirects back to.
	FrontendURL string `json:"frontendUrl" yaml:"frontendUrl"`
}

// SumUpConfig defines SumUp API endpoints and client policy.
type SumUpConfig struct {
	// AuthBaseURL hosts /authorize and /token.
	AuthBaseURL string `json:"authBaseUrl" yaml:"authBaseUrl"`

	// APIBaseURL hosts the profile and transaction-history endpoints.
	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`

	// HTTPTimeout bounds every outbound call to SumUp. The upstream contract
	// imposes none; an unbounded call would hang a request forever.
	HTTPTimeout time.Duration `json:"httpTimeout" yaml:"httpTimeout"`
}

// AuthConfig defines settings for verifying end-user bearer tokens.
type AuthConfig struct {
	// JWTSecret is the HS256 secret shared with the external auth provider.
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
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
			// Example: SUMUP_APIBASEURL -> sumup.apiBaseUrl (not sumup.apibaseurl)
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

	if cfg.SumUp.AuthBaseURL == "" {
		cfg.SumUp.AuthBaseURL = defaultSumUpAuthBase
	}
	if cfg.SumUp.APIBaseURL == "" {
		cfg.SumUp.APIBaseURL = defaultSumUpAPIBase
	}
	if cfg.SumUp.HTTPTimeout <= 0 {
		cfg.SumUp.HTTPTimeout = defaultHTTPTimeout
	}

	return cfg, nil
}

// RedirectURI is the OAuth callback endpoint registered with the provider.
func (c *Config) RedirectURI() string {
	return strings.TrimRight(c.App.BaseURL, "/") + "/oauth/sumup/callback"
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
