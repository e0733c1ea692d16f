package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/finanalyzer/finanalyzer/internal/extractor"
	"github.com/finanalyzer/finanalyzer/internal/models"
)

// Config holds the runtime settings shared by the CLI and the server.
type Config struct {
	ListenAddr     string
	MaxUploadMB    int
	DefaultProfile models.Profile
	SnapTolerance  float64
	ColumnGap      float64
	Currency       string
}

// Load builds the configuration from defaults, FINANALYZER_* env vars
// and an optional config file. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("max_upload_mb", 32)
	v.SetDefault("default_profile", "")
	v.SetDefault("snap_tolerance", 4.0)
	v.SetDefault("column_gap", 12.0)
	v.SetDefault("currency", "INR")

	v.SetEnvPrefix("FINANALYZER")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	cfg := &Config{
		ListenAddr:     v.GetString("listen_addr"),
		MaxUploadMB:    v.GetInt("max_upload_mb"),
		DefaultProfile: models.Profile(v.GetString("default_profile")),
		SnapTolerance:  v.GetFloat64("snap_tolerance"),
		ColumnGap:      v.GetFloat64("column_gap"),
		Currency:       v.GetString("currency"),
	}
	if cfg.DefaultProfile != "" &&
		cfg.DefaultProfile != models.ProfileKotak &&
		cfg.DefaultProfile != models.ProfileGeneric {
		return nil, fmt.Errorf("unknown default_profile %q", cfg.DefaultProfile)
	}
	return cfg, nil
}

// TableConfig returns the geometry-detection settings as the immutable
// value handed to each extraction run.
func (c *Config) TableConfig() extractor.TableConfig {
	return extractor.TableConfig{
		Strategy:      extractor.StrategyText,
		SnapTolerance: c.SnapTolerance,
		ColumnGap:     c.ColumnGap,
	}
}
