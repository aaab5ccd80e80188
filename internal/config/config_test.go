package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rperrors "github.com/magnhaug/rp/internal/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func()
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:  "defaults from empty state",
			setup: func() { viper.Reset() },
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Templates)
				assert.Empty(t, cfg.Files)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Zero(t, cfg.Workers)
				assert.False(t, cfg.Silent)
			},
		},
		{
			name: "explicit values",
			setup: func() {
				viper.Reset()
				viper.Set("templates", []string{"prompts/review.txt"})
				viper.Set("files", []string{"main.go", "go.mod"})
				viper.Set("list_file", "files.txt")
				viper.Set("output", "out.xml")
				viper.Set("silent", true)
				viper.Set("log_level", "debug")
				viper.Set("workers", 4)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"prompts/review.txt"}, cfg.Templates)
				assert.Equal(t, []string{"main.go", "go.mod"}, cfg.Files)
				assert.Equal(t, "files.txt", cfg.ListFile)
				assert.Equal(t, "out.xml", cfg.Output)
				assert.True(t, cfg.Silent)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, 4, cfg.Workers)
			},
		},
		{
			name: "negative workers rejected",
			setup: func() {
				viper.Reset()
				viper.Set("workers", -1)
			},
			expectError: true,
		},
		{
			name: "unknown log level rejected",
			setup: func() {
				viper.Reset()
				viper.Set("log_level", "loud")
			},
			expectError: true,
		},
		{
			name: "unparsable workers value",
			setup: func() {
				viper.Reset()
				viper.Set("workers", "many")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer viper.Reset()

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, rperrors.IsType(err, rperrors.ErrorTypeConfig))
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{LogLevel: "info"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{LogLevel: "info", Workers: -2}
	assert.Error(t, cfg.Validate())

	cfg = &Config{LogLevel: ""}
	assert.Error(t, cfg.Validate())
}
