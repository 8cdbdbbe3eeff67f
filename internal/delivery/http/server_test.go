package http

import (
	"testing"

	"guideflow/config"

	"github.com/stretchr/testify/assert"
)

func TestCORSConfig_AllowList(t *testing.T) {
	cfg := &config.CORSConfig{
		AllowOrigins:      []string{"http://localhost:5173", "https://guides.example.com"},
		AllowOriginSuffix: ".vercel.app",
	}

	corsCfg := corsConfig(cfg)

	cases := []struct {
		origin  string
		allowed bool
	}{
		{"http://localhost:5173", true},
		{"https://guides.example.com", true},
		{"https://preview-abc123.vercel.app", true},
		{"https://evil.example.net", false},
		{"https://vercel.app.evil.net", false},
	}

	for _, tc := range cases {
		allowed, err := corsCfg.AllowOriginFunc(tc.origin)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, tc.origin)
	}
}

func TestCORSConfig_NilFallsBackToDefault(t *testing.T) {
	corsCfg := corsConfig(nil)

	assert.Nil(t, corsCfg.AllowOriginFunc)
	assert.Contains(t, corsCfg.AllowOrigins, "*")
}
