package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Auth     AuthConfig
	Signup   SignupConfig
	Toast    ToastConfig
	Splash   SplashConfig
	Shake    ShakeConfig
	UI       UIConfig
	Log      LogConfig
	Security SecurityConfig
	// Keys overrides the keys bound to an action, e.g. activate = ["enter"].
	Keys map[string][]string
}

// AuthConfig controls the simulated login round trip.
type AuthConfig struct {
	Delay time.Duration
}

type SignupConfig struct {
	Delay time.Duration
}

type ToastConfig struct {
	Timeout time.Duration
}

type SplashConfig struct {
	Duration time.Duration
}

type ShakeConfig struct {
	Step time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Version   string
	ThemePath string `mapstructure:"theme_path"`
	FormWidth int    `mapstructure:"form_width"`
}

// LogConfig selects where logs go. An empty Path discards them.
type LogConfig struct {
	Path  string
	Level string
}

type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// EnvPrefix prefixes every environment override, e.g. MINISA_AUTH_DELAY.
const EnvPrefix = "MINISA"

func setDefaults(v *viper.Viper) {
	v.SetDefault("auth.delay", 2*time.Second)
	v.SetDefault("signup.delay", 2*time.Second)
	v.SetDefault("toast.timeout", 3*time.Second)
	v.SetDefault("splash.duration", 2*time.Second)
	v.SetDefault("shake.step", 100*time.Millisecond)
	v.SetDefault("ui.version", "v1.0.0")
	v.SetDefault("ui.theme_path", filepath.Join(configDir(), "theme.toml"))
	v.SetDefault("ui.form_width", 48)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("security.bcrypt_cost", 10)
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "minisa")
}

// Path is the config file Load reads and Save writes.
func Path() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix MINISA_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !missing(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c.normalized(), nil
}

// missing reports whether err means there is simply no config file.
// An explicit MINISA_CONFIG path that does not exist counts too.
func missing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// normalized replaces values the app cannot run with.
func (c Config) normalized() Config {
	if c.Auth.Delay < 0 {
		c.Auth.Delay = 0
	}
	if c.Signup.Delay < 0 {
		c.Signup.Delay = 0
	}
	if c.Toast.Timeout <= 0 {
		c.Toast.Timeout = 3 * time.Second
	}
	if c.Shake.Step <= 0 {
		c.Shake.Step = 100 * time.Millisecond
	}
	if c.UI.FormWidth < 24 {
		c.UI.FormWidth = 24
	}
	return c
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("auth.delay", cfg.Auth.Delay.String())
	v.Set("signup.delay", cfg.Signup.Delay.String())
	v.Set("toast.timeout", cfg.Toast.Timeout.String())
	v.Set("splash.duration", cfg.Splash.Duration.String())
	v.Set("shake.step", cfg.Shake.Step.String())
	v.Set("ui.version", cfg.UI.Version)
	v.Set("ui.theme_path", cfg.UI.ThemePath)
	v.Set("ui.form_width", cfg.UI.FormWidth)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("security.bcrypt_cost", cfg.Security.BcryptCost)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
