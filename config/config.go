// Package config loads the service configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activities/logging"
)

const (
	// Default listener settings
	defaultListenAddr = ":8080"

	// Default monitoring settings
	defaultMetricsPrefix  = "mergington_activities"
	defaultJobName        = "activities"
	defaultReportSchedule = "0 * * * *"
)

// Config represents the complete application configuration
type Config struct {
	Listener   ListenerConfig   `yaml:"listener"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    logging.Config   `yaml:"logging"`
}

// ListenerConfig holds HTTP server listener settings
type ListenerConfig struct {
	// Addr is the listen address, defaults to :8080
	Addr string `yaml:"addr"`
}

// MonitoringConfig holds metrics and monitoring settings
type MonitoringConfig struct {
	// VictoriaMetricsURL is the remote write endpoint for scheduled
	// roster reports. Leave empty to disable pushing; the /metrics
	// scrape endpoint is always available.
	VictoriaMetricsURL string `yaml:"victoriametrics_url"`
	MetricsPrefix      string `yaml:"metrics_prefix"`
	JobName            string `yaml:"jobname"`
	// ReportSchedule is the cron spec for roster report pushes
	// (5 fields: minute, hour, day, month, weekday).
	ReportSchedule string `yaml:"report_schedule"`
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.Monitoring.VictoriaMetricsURL != "" && c.Monitoring.ReportSchedule == "" {
		return fmt.Errorf("report schedule is required when a remote write URL is set")
	}
	return nil
}

// SetDefaults sets reasonable default values for optional fields
func (c *Config) SetDefaults() {
	if c.Listener.Addr == "" {
		c.Listener.Addr = defaultListenAddr
	}
	if c.Monitoring.MetricsPrefix == "" {
		c.Monitoring.MetricsPrefix = defaultMetricsPrefix
	}
	if c.Monitoring.JobName == "" {
		c.Monitoring.JobName = defaultJobName
	}
	if c.Monitoring.ReportSchedule == "" {
		c.Monitoring.ReportSchedule = defaultReportSchedule
	}
	// Logging defaults are applied by the logging package itself.
}

// Default returns the configuration used when no config file is given.
// The service is fully functional without one: in-memory storage,
// scrape-only metrics, JSON logs on stdout.
func Default() Config {
	var cfg Config
	cfg.SetDefaults()
	return cfg
}

// LoadConfig reads the YAML config file at the given path and returns a Config struct
func LoadConfig(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
