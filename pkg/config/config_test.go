package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.True(t, cfg.Reports.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Reports.QueryTimeout)
	assert.Equal(t, 500, cfg.Reports.MaxLimit)
	assert.False(t, cfg.Reports.ExportsEnabled)
	assert.Equal(t, 30*time.Minute, cfg.Categories.CacheTTL)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("REPORTS_QUERY_TIMEOUT", "not-a-duration")
	v.Set("REPORTS_MAX_LIMIT", 0)
	v.Set("ALLOWED_ORIGINS", " https://admin.campus.test , ,https://app.campus.test")
	v.Set("ENABLE_REPORT_EXPORTS", true)

	cfg := fromViper(v)

	assert.Equal(t, 15*time.Second, cfg.Reports.QueryTimeout)
	assert.Equal(t, 500, cfg.Reports.MaxLimit)
	assert.True(t, cfg.Reports.ExportsEnabled)
	assert.Equal(t, []string{"https://admin.campus.test", "https://app.campus.test"}, cfg.CORS.AllowedOrigins)
}

func TestRedisAddrAndTimeout(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("REDIS_HOST", "cache.internal")
	v.Set("REDIS_TIMEOUT", "250ms")

	cfg := fromViper(v)

	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.Redis.Timeout)
}
