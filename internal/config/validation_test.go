package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Default(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestValidate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "negative max size",
			mutate:  func(c *Config) { c.Scan.MaxFileSizeKB = -1 },
			wantErr: true,
		},
		{
			name:    "blank extension",
			mutate:  func(c *Config) { c.Scan.Extensions = []string{"  "} },
			wantErr: true,
		},
		{
			name:    "extension with separator",
			mutate:  func(c *Config) { c.Scan.Extensions = []string{".c/pp"} },
			wantErr: true,
		},
		{
			name:    "invalid scan dir",
			mutate:  func(c *Config) { c.Scan.Dirs = []string{"bad\x00path"} },
			wantErr: true,
		},
		{
			name:   "extensions without dots are fine",
			mutate: func(c *Config) { c.Scan.Extensions = []string{"c", "css"} },
		},
		{
			name:   "no extensions means scan everything",
			mutate: func(c *Config) { c.Scan.Extensions = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Preview(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preview.SwatchWidth = 0
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Preview.SwatchWidth = 41
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Preview.ColorMode = "16bit"
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Preview.ColorMode = "256"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_Preferences(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preferences.Theme = "solarized"
	assert.Error(t, Validate(cfg))

	cfg.Preferences.Theme = "light"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_Paths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.Database = "bad\x00path.db"
	assert.Error(t, Validate(cfg))

	cfg.Paths.Database = ""
	assert.NoError(t, Validate(cfg))
}
