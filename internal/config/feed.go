package config

import (
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/wormsign/wormsign/internal"
	"github.com/wormsign/wormsign/wormsign/advisory"
)

type feed struct {
	CacheDir        string        `yaml:"cache-dir" mapstructure:"cache-dir"`
	URL             string        `yaml:"url" mapstructure:"url"`
	DownloadTimeout time.Duration `yaml:"download-timeout" mapstructure:"download-timeout"`
}

func (cfg feed) loadDefaultValues(v *viper.Viper) {
	// e.g. ~/.cache/wormsign/feed
	v.SetDefault("feed.cache-dir", path.Join(xdg.CacheHome, internal.ApplicationName, "feed"))
	v.SetDefault("feed.url", internal.FeedURL)
	v.SetDefault("feed.download-timeout", 30*time.Second)
}

func (cfg feed) ToCuratorConfig() advisory.Config {
	return advisory.Config{
		CacheDir: cfg.CacheDir,
		FeedURL:  cfg.URL,
	}
}
