package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// OptimizerConfig mirrors every recognized option in the optimizer's
// Configuration table.
type OptimizerConfig struct {
	MaxSwaps        int      `yaml:"maxSwaps" validate:"required,min=1"`
	StagnationLimit int      `yaml:"stagnationLimit" validate:"required,min=1"`
	WDistrib        float64  `yaml:"wDistrib" validate:"gte=0"`
	WParity         float64  `yaml:"wParity" validate:"gte=0"`
	WProfiles       float64  `yaml:"wProfiles" validate:"gte=0"`
	WFriends        float64  `yaml:"wFriends" validate:"gte=0"`
	HeadMin         int      `yaml:"headMin" validate:"gte=0"`
	HeadMax         int      `yaml:"headMax" validate:"gtefield=HeadMin"`
	Niv1Max         int      `yaml:"niv1Max" validate:"gte=0"`
	Niv1Min         int      `yaml:"niv1Min" validate:"gte=0"`
	DefaultLV2      string   `yaml:"defaultLV2" validate:"required"`
	SpecializedOPT  []string `yaml:"specializedOPT,omitempty"`
	ExplorationRate float64  `yaml:"explorationRate" validate:"gte=0,lte=1"`
	SampleSize      int      `yaml:"sampleSize" validate:"required,min=1"`
}

// AuditSchedule names an RRULE-driven recurring audit run. It never
// changes optimizer behavior, only when the CLI's audit command is
// expected to run unattended.
type AuditSchedule struct {
	RRule string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration.
type Config struct {
	StudentsSheetID string `yaml:"studentsSheetID" validate:"required"`
	StudentsTab     string `yaml:"studentsTab" validate:"required"`
	QuotasSheetID   string `yaml:"quotasSheetID" validate:"required"`
	LV2QuotasTab    string `yaml:"lv2QuotasTab" validate:"required"`
	OPTQuotasTab    string `yaml:"optQuotasTab" validate:"required"`

	DatabaseDSN string `yaml:"databaseDSN" validate:"required"`

	Optimizer      OptimizerConfig `yaml:"optimizer" validate:"required"`
	AuditSchedules []AuditSchedule `yaml:"auditSchedules,omitempty" validate:"dive"`

	HasAntinomyAttribute bool `yaml:"hasAntinomyAttribute"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration with an environment
// suffix. For example, env="test" looks for "repartition_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, schedule := range cfg.AuditSchedules {
		if _, err := rrule.StrToRRule(schedule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in auditSchedules[%d]: %w", i, err)
		}
	}

	return nil
}

// NextAuditAt returns the earliest occurrence, strictly after from,
// across every configured audit schedule. Returns false if no
// schedule is configured or every schedule's RRule fails to parse.
func NextAuditAt(schedules []AuditSchedule, from time.Time) (time.Time, bool) {
	var next time.Time
	found := false

	for _, schedule := range schedules {
		r, err := rrule.StrToRRule(schedule.RRule)
		if err != nil {
			continue
		}
		r.DTStart(from)
		occurrence := r.After(from, false)
		if occurrence.IsZero() {
			continue
		}
		if !found || occurrence.Before(next) {
			next = occurrence
			found = true
		}
	}

	return next, found
}

// findConfigFile searches for the config file in the current directory
// and the home directory. If env is provided, it adds it as an
// extension (e.g., "repartition_config.test.yaml").
func findConfigFile(env string) (string, error) {
	configFileName := "repartition_config.yaml"
	if env != "" {
		configFileName = "repartition_config." + env + ".yaml"
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
