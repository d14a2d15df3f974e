package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewConfig(Config{ManifestPath: "m", DocumentPath: "d.html", Watch: true})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 200*time.Millisecond, cfg.Debounce)
	})

	testCases := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{name: "no manifest", cfg: Config{DocumentPath: "d.html"}, errMsg: "ManifestPath"},
		{name: "no document", cfg: Config{ManifestPath: "m"}, errMsg: "DocumentPath"},
		{name: "bad format", cfg: Config{ManifestPath: "m", DocumentPath: "d", LogFormat: "xml"}, errMsg: "invalid log format"},
		{name: "bad level", cfg: Config{ManifestPath: "m", DocumentPath: "d", LogLevel: "trace"}, errMsg: "invalid log level"},
		{name: "negative debounce", cfg: Config{ManifestPath: "m", DocumentPath: "d", Debounce: -time.Second}, errMsg: "debounce"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			assert.ErrorContains(t, err, tc.errMsg)
		})
	}
}
