package configmanager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/utils/envvar"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Flag names bound to configuration keys.
const (
	FlagConfig     = "config"
	FlagBackendURL = "backend-url"
	FlagTimeout    = "timeout"
	FlagLogLevel   = "log-level"
	FlagLogFile    = "log-file"
)

// Configuration keys.
const (
	KeyBackendURL           = "backend.url"
	KeyBackendTimeout       = "backend.timeout"
	KeyChatGreeting         = "chat.greeting"
	KeyMetricsInterval      = "metrics.interval"
	KeyMetricsDefaultKind   = "metrics.defaultKind"
	KeyNotificationDuration = "ui.notificationDuration"
	KeyLogLevel             = "log.level"
	KeyLogFile              = "log.file"
)

// ErrInvalidConfig is returned when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

var flagKeys = map[string]string{ //nolint:gochecknoglobals // static flag-to-key table
	FlagBackendURL: KeyBackendURL,
	FlagTimeout:    KeyBackendTimeout,
	FlagLogLevel:   KeyLogLevel,
	FlagLogFile:    KeyLogFile,
}

// Manager resolves the effective configuration. The result is cached after the first Load.
type Manager struct {
	Viper *viper.Viper

	configFile string
	loaded     *v1alpha1.Config
	fileUsed   string
}

// NewManager creates a Manager with defaults registered and environment overrides enabled.
func NewManager() *Manager {
	return &Manager{Viper: InitializeViper()}
}

// InitializeViper creates a viper instance with search paths, env prefix, and defaults.
func InitializeViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName(strings.TrimSuffix(v1alpha1.DefaultConfigFileName, filepath.Ext(v1alpha1.DefaultConfigFileName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "kubeassist"))
	}

	v.SetEnvPrefix(v1alpha1.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := v1alpha1.NewConfig()
	v.SetDefault(KeyBackendURL, defaults.Backend.URL)
	v.SetDefault(KeyBackendTimeout, defaults.Backend.Timeout.Duration.String())
	v.SetDefault(KeyChatGreeting, defaults.Chat.Greeting)
	v.SetDefault(KeyMetricsInterval, defaults.Metrics.Interval.Duration.String())
	v.SetDefault(KeyMetricsDefaultKind, string(defaults.Metrics.DefaultKind))
	v.SetDefault(KeyNotificationDuration, defaults.UI.NotificationDuration.Duration.String())
	v.SetDefault(KeyLogLevel, string(defaults.Log.Level))
	v.SetDefault(KeyLogFile, defaults.Log.File)

	return v
}

// AddFlags registers the global configuration flags on the given flag set.
func (m *Manager) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&m.configFile, FlagConfig, "", "path to a kubeassist.yaml config file")
	flags.String(FlagBackendURL, v1alpha1.DefaultBackendURL, "base URL of the assistant backend")
	flags.Duration(FlagTimeout, v1alpha1.DefaultBackendTimeout, "timeout for a single backend request")
	flags.String(FlagLogLevel, string(v1alpha1.DefaultLogLevel), "log level (debug, info, warn, error)")
	flags.String(FlagLogFile, "", "write logs to this file")
}

// BindFlags binds the flags registered by AddFlags to their configuration keys.
// Only flags the user changed take precedence over file and environment values.
func (m *Manager) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		err := m.Viper.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// Load reads, decodes, and validates the configuration.
func (m *Manager) Load() (*v1alpha1.Config, error) {
	if m.loaded != nil {
		return m.loaded, nil
	}

	err := m.readConfig()
	if err != nil {
		return nil, err
	}

	cfg := v1alpha1.NewConfig()

	err = m.Viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			metav1DurationDecodeHook(),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	expandPlaceholders(cfg)

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	m.loaded = cfg

	return cfg, nil
}

// ConfigFileUsed returns the path of the file the configuration was read from, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.fileUsed
}

func (m *Manager) readConfig() error {
	if m.configFile != "" {
		m.Viper.SetConfigFile(m.configFile)
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	m.fileUsed = m.Viper.ConfigFileUsed()

	return nil
}

// expandPlaceholders resolves ${VAR} references in free-form string fields.
func expandPlaceholders(cfg *v1alpha1.Config) {
	cfg.Backend.URL = envvar.Expand(cfg.Backend.URL)
	cfg.Chat.Greeting = envvar.Expand(cfg.Chat.Greeting)
	cfg.Log.File = envvar.Expand(cfg.Log.File)
}

// metav1DurationDecodeHook decodes duration strings and time.Duration values into metav1.Duration.
func metav1DurationDecodeHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeFor[metav1.Duration]() {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			parsed, err := time.ParseDuration(value)
			if err != nil {
				return nil, fmt.Errorf("parse duration %q: %w", value, err)
			}

			return metav1.Duration{Duration: parsed}, nil
		case time.Duration:
			return metav1.Duration{Duration: value}, nil
		case int:
			return metav1.Duration{Duration: time.Duration(value)}, nil
		case int64:
			return metav1.Duration{Duration: time.Duration(value)}, nil
		default:
			return data, nil
		}
	}
}
