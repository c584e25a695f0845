package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo data settings.
type Config struct {
	Groups          int     `yaml:"groups"            env:"SEEDER_GROUPS"            env-default:"3"`
	MembersPerGroup int     `yaml:"members_per_group" env:"SEEDER_MEMBERS_PER_GROUP" env-default:"12"`
	Weeks           int     `yaml:"weeks"             env:"SEEDER_WEEKS"             env-default:"12"`
	AttendanceRate  float64 `yaml:"attendance_rate"   env:"SEEDER_ATTENDANCE_RATE"   env-default:"0.6"`
	Password        string  `yaml:"password"          env:"SEEDER_PASSWORD"          env-default:"changeme123"`
	EmailDomain     string  `yaml:"email_domain"      env:"SEEDER_EMAIL_DOMAIN"      env-default:"demo.local"`
	RandSeed        uint64  `yaml:"rand_seed"         env:"SEEDER_RAND_SEED"         env-default:"1"`
	DryRun          bool    `yaml:"dry_run"           env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configured sizes.
func (c Config) Validate() error {
	switch {
	case c.Groups < 1:
		return fmt.Errorf("groups must be > 0 (got %d)", c.Groups)
	case c.MembersPerGroup < 0:
		return fmt.Errorf("members_per_group must be >= 0 (got %d)", c.MembersPerGroup)
	case c.Weeks < 0:
		return fmt.Errorf("weeks must be >= 0 (got %d)", c.Weeks)
	case c.AttendanceRate < 0 || c.AttendanceRate > 1:
		return fmt.Errorf("attendance_rate must be in [0, 1] (got %g)", c.AttendanceRate)
	case len(c.Password) < 8:
		return fmt.Errorf("password must be at least 8 characters")
	case c.EmailDomain == "":
		return fmt.Errorf("email_domain must not be empty")
	}
	return nil
}
