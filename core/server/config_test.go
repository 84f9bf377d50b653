package server_test

import (
	"testing"
	"time"

	"recon-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Derived(t *testing.T) {
	tests := []struct {
		name      string
		cfg       server.Config
		bodyLimit int
		read      time.Duration
		address   string
	}{
		{"Defaults", server.Config{Port: "8080", BodyLimitMB: 310, ReadTimeoutSeconds: 120}, 310 << 20, 2 * time.Minute, ":8080"},
		{"Small", server.Config{Port: "3000", BodyLimitMB: 1, ReadTimeoutSeconds: 5}, 1 << 20, 5 * time.Second, ":3000"},
		{"NoTimeout", server.Config{Port: "80"}, 0, 0, ":80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bodyLimit, tt.cfg.BodyLimit())
			assert.Equal(t, tt.read, tt.cfg.ReadTimeout())
			assert.Equal(t, tt.address, tt.cfg.Address())
		})
	}
}
