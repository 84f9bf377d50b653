package tabular

// Config holds the upload limits.
type Config struct {
	// MaxFileSizeMB is the largest accepted upload, per file.
	MaxFileSizeMB int `mapstructure:"max_file_size_mb" default:"100" validate:"gt=0"`
	// AllowedExtensions lists the accepted file extensions, dot included.
	AllowedExtensions []string `mapstructure:"allowed_extensions" default:".csv,.xlsx" validate:"required,min=1,dive,oneof=.csv .xlsx"`
}

// DefaultConfig returns the configuration matching the struct tag defaults.
func DefaultConfig() Config {
	return Config{
		MaxFileSizeMB:     100,
		AllowedExtensions: []string{ExtCSV, ExtXLSX},
	}
}

// MaxBytes returns the per-file size limit in bytes.
func (c Config) MaxBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}
