package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		env        map[string]string
		assertCfg  func(t *testing.T, cfg *Config)
		wantErrMsg string
	}{
		{
			name:    "defaults only",
			content: "",
			assertCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "jisho.org", cfg.Dictionary.Host)
				assert.Equal(t, "KanjiStudy/1.0", cfg.Dictionary.UserAgent)
				assert.Equal(t, 72, cfg.Auth.TokenTTLHours)
				assert.Equal(t, "kanjistudy", cfg.Database.Database)
			},
		},
		{
			name: "explicit values",
			content: `server:
  port: 9090
  cors:
    allowed_origins:
      - http://localhost:3000
database:
  host: db.internal
  port: 3307
  username: app
  database: kanji
dictionary:
  host: jisho.example.org
`,
			assertCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowedOrigins)
				assert.Equal(t, "db.internal", cfg.Database.Host)
				assert.Equal(t, 3307, cfg.Database.Port)
				assert.Equal(t, "jisho.example.org", cfg.Dictionary.Host)
			},
		},
		{
			name: "secrets from environment",
			env: map[string]string{
				"KANJISTUDY_DB_PASSWORD": "hunter2",
				"KANJISTUDY_JWT_SECRET":  "top-secret",
			},
			assertCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "hunter2", cfg.Database.Password)
				assert.Equal(t, "top-secret", cfg.Auth.JWTSecret)
			},
		},
		{
			name: "invalid port",
			content: `server:
  port: 99999
`,
			wantErrMsg: "invalid configuration",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfgPath := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(cfgPath, []byte(tc.content), 0644))

			cfg, err := Load(cfgPath)
			if tc.wantErrMsg != "" {
				require.ErrorContains(t, err, tc.wantErrMsg)
				return
			}
			require.NoError(t, err)
			tc.assertCfg(t, cfg)
		})
	}
}

func TestLoad_missingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
