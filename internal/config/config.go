// internal/config/config.go
//
// This package handles configuration and the .restaurateur directory.
// Every project directory restaurateur runs in gets a .restaurateur/ folder
// holding config.yaml and the journal. Business data itself is never
// written here.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/restaurateur/internal/restaurant"
)

const (
	// Dir is the name of the directory we create in each project
	Dir = ".restaurateur"

	defaultPaymentMode = "card"
	defaultDateLayout  = "2006-01-02"
	defaultLogLines    = 8

	envPaymentMode = "RESTAURATEUR_PAYMENT_MODE"
	envDateLayout  = "RESTAURATEUR_DATE_LAYOUT"
)

const defaultProjectConfigYAML = `# restaurateur project configuration
version: 1

orders:
  # Used when the payment mode typed for an order is not one of
  # cash, card, upi, wallet.
  default_payment_mode: card
  # Go time layout used to prefill an order date left blank.
  date_layout: "2006-01-02"

display:
  currency: ""
  # Journal lines shown under the main screen. 0 hides the panel.
  log_lines: 8
`

// OrderSettings captures how orders are defaulted.
type OrderSettings struct {
	DefaultPaymentMode string `yaml:"default_payment_mode"`
	DateLayout         string `yaml:"date_layout"`
}

// DisplaySettings captures rendering preferences.
type DisplaySettings struct {
	Currency string `yaml:"currency"`
	LogLines int    `yaml:"log_lines"`
}

// ProjectConfig models .restaurateur/config.yaml.
type ProjectConfig struct {
	Version int             `yaml:"version"`
	Orders  OrderSettings   `yaml:"orders"`
	Display DisplaySettings `yaml:"display"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory restaurateur was started from
	ProjectDir string

	// StateDir is ProjectDir/.restaurateur
	StateDir string

	Project ProjectConfig
}

// InitDir creates the .restaurateur directory structure in projectDir and
// writes a default config.yaml when none exists.
//
// Structure created:
// .restaurateur/
// ├── config.yaml
// └── logs/         <- journal.log
func InitDir(projectDir string) error {
	stateDir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(filepath.Join(stateDir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: ensure %s: %w", stateDir, err)
	}
	return ensureProjectConfig(filepath.Join(stateDir, "config.yaml"))
}

// NewConfig loads the project settings. A .env file in projectDir, if any,
// is loaded first so its variables can override config.yaml.
func NewConfig(projectDir string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(projectDir, ".env"))

	cfg := &Config{
		ProjectDir: projectDir,
		StateDir:   filepath.Join(projectDir, Dir),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.StateDir, "logs")
}

// JournalPath returns the path of the journal written by the logbook.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journal.log")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.StateDir, "config.yaml")
}

// DefaultPaymentMode returns the fallback for unrecognised payment input.
func (c *Config) DefaultPaymentMode() restaurant.PaymentMode {
	mode, _ := restaurant.ParsePaymentMode(c.Project.Orders.DefaultPaymentMode, restaurant.Card)
	return mode
}

// DateLayout returns the layout used to prefill order dates.
func (c *Config) DateLayout() string {
	return c.Project.Orders.DateLayout
}

// Today formats now with the configured date layout.
func (c *Config) Today(now time.Time) string {
	return now.Format(c.DateLayout())
}

// Currency returns the symbol printed before prices.
func (c *Config) Currency() string {
	return c.Project.Display.Currency
}

// LogLines returns how many journal lines the UI shows.
func (c *Config) LogLines() int {
	return c.Project.Display.LogLines
}

// SetDefaultPaymentMode updates the fallback payment mode and persists it
// back to config.yaml.
func (c *Config) SetDefaultPaymentMode(mode restaurant.PaymentMode) error {
	c.Project.Orders.DefaultPaymentMode = strings.ToLower(mode.String())
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(envPaymentMode)); v != "" {
		c.Project.Orders.DefaultPaymentMode = v
	}
	if v := strings.TrimSpace(os.Getenv(envDateLayout)); v != "" {
		c.Project.Orders.DateLayout = v
	}
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Orders: OrderSettings{
			DefaultPaymentMode: defaultPaymentMode,
			DateLayout:         defaultDateLayout,
		},
		Display: DisplaySettings{
			LogLines: defaultLogLines,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Orders.DefaultPaymentMode) == "" {
		pc.Orders.DefaultPaymentMode = defaultPaymentMode
	}
	if strings.TrimSpace(pc.Orders.DateLayout) == "" {
		pc.Orders.DateLayout = defaultDateLayout
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Orders.DefaultPaymentMode = strings.ToLower(strings.TrimSpace(pc.Orders.DefaultPaymentMode))
	pc.Orders.DateLayout = strings.TrimSpace(pc.Orders.DateLayout)
	pc.Display.Currency = strings.TrimSpace(pc.Display.Currency)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := restaurant.ParsePaymentMode(pc.Orders.DefaultPaymentMode, restaurant.Card); err != nil {
		return fmt.Errorf("orders.default_payment_mode must be one of cash, card, upi, wallet")
	}
	if pc.Orders.DateLayout == "" {
		return fmt.Errorf("orders.date_layout is required")
	}
	if pc.Display.LogLines < 0 {
		return fmt.Errorf("display.log_lines must be >= 0")
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.StateDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure state dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
