package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// Name is the application name reported by Fiber and the health endpoint.
	Name string `mapstructure:"name" default:"recon-manager"`
	// BodyLimitMB caps the size of a request body; three uploads must fit in it.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"310" validate:"gt=0"`
	// ReadTimeoutSeconds bounds reading a full request, uploads included.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"120" validate:"gte=0"`
	// WriteTimeoutSeconds bounds writing a response, report downloads included.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"120" validate:"gte=0"`
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	return c.BodyLimitMB << 20
}

// ReadTimeout returns the read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
