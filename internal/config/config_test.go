package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "marketplace"
password = "marketplace"
dbname = "marketplace"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/marketplace.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "smc-marketplace"

[auth]
jwt_secret = "test-secret"
token_ttl_minutes = 30

[payments]
failure_rate = 0.1
simulated_latency_ms = 150

[notifications]
email_dir = "email_notifications"
stream_buffer_size = 16
stream_ping_interval = 30

[ratelimit]
enabled = true
rps = 1.0
burst = 5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 0.1, cfg.Payments.FailureRate)
	assert.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t,
		"host=localhost port=5432 user=marketplace password=marketplace dbname=marketplace sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"missing jwt secret", `jwt_secret = "test-secret"`, `jwt_secret = ""`},
		{"zero port", "http_port = 8080", "http_port = 0"},
		{"failure rate above one", "failure_rate = 0.1", "failure_rate = 1.5"},
		{"negative failure rate", "failure_rate = 0.1", "failure_rate = -0.1"},
		{"zero token ttl", "token_ttl_minutes = 30", "token_ttl_minutes = 0"},
		{"metrics path missing", `path = "/metrics"`, `path = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(validConfig, tt.from, tt.to, 1)
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_NotificationDefaults(t *testing.T) {
	content := strings.Replace(validConfig, "stream_buffer_size = 16", "stream_buffer_size = 0", 1)
	content = strings.Replace(content, "stream_ping_interval = 30", "stream_ping_interval = 0", 1)

	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Notifications.StreamBufferSize)
	assert.Equal(t, 30, cfg.Notifications.StreamPingInterval)
}
