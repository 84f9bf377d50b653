package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"recon-manager/core/database"
	"recon-manager/core/logger"
	"recon-manager/core/reconcile"
	"recon-manager/core/server"
	"recon-manager/core/storage"
	"recon-manager/core/tabular"
	"recon-manager/core/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Upload holds the accepted file types and sizes.
	Upload tabular.Config `mapstructure:"upload"`
	// Reconcile holds the column names, labels and status vocabulary.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// Archive controls whether finished runs are stored.
	Archive ArchiveConfig `mapstructure:"archive"`
}

// ArchiveConfig controls the optional run archive.
type ArchiveConfig struct {
	// Enabled turns on storing reports in object storage and runs in the database.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Prefix is the object key prefix of archived reports.
	Prefix string `mapstructure:"prefix" default:"runs"`
	// AutoMigrate creates or updates the run ledger table on startup.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"true"`
}

// ValidationError lists the configuration keys that failed validation,
// mapped to the rule they broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s (%s)", k, e.Fields[k])
	}
	return "invalid configuration: " + strings.Join(parts, ", ")
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// normalize trims list values decoded from comma separated strings.
func (c *Config) normalize() {
	c.Upload.AllowedExtensions = cleanList(c.Upload.AllowedExtensions)
	for i, ext := range c.Upload.AllowedExtensions {
		c.Upload.AllowedExtensions[i] = strings.ToLower(ext)
	}
	c.Reconcile.SuccessStatuses = cleanList(c.Reconcile.SuccessStatuses)
	c.Reconcile.FailStatuses = cleanList(c.Reconcile.FailStatuses)
}

func cleanList(list []string) []string {
	return utils.SplitList(strings.Join(list, ","))
}

// Validate checks the struct tag rules and the cross-field rules of the
// reconciliation settings.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
	})

	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return err
		}
		return &ValidationError{Fields: processValidationErrors(ve)}
	}
	if err := c.Reconcile.Check(); err != nil {
		return fmt.Errorf("invalid reconcile configuration: %w", err)
	}
	return nil
}

// processValidationErrors maps each failing key (e.g. "upload.max_file_size_mb") to its rule.
func processValidationErrors(ve validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		out[ns] = fe.Tag()
	}
	return out
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
