package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

// Settings are the process-level knobs that are not part of the persisted
// feed/template document.
type Settings struct {
	ConfigPath  string        `hcl:"config_path" env:"CONFIG_PATH"`
	HTTPTimeout time.Duration `hcl:"http_timeout" env:"HTTP_TIMEOUT" default:"30s"`
	UserAgent   string        `hcl:"user_agent" env:"USER_AGENT" default:"feedHook/1.0"`
}

var (
	settings Settings
	once     sync.Once
)

func GetSettings() Settings {
	once.Do(func() {
		loader := aconfig.LoaderFor(&settings, aconfig.Config{
			EnvPrefix: "FEEDHOOK",
			Files:     []string{"./settings.hcl", filepath.Join(xdg.ConfigHome, "feedhook", "settings.hcl")},
			FileDecoders: map[string]aconfig.FileDecoder{
				".hcl": aconfighcl.New(),
			},
		})

		if err := loader.Load(); err != nil {
			slog.Error("failed to load settings", "err", err)
		}

		if settings.ConfigPath == "" {
			settings.ConfigPath = filepath.Join(xdg.ConfigHome, "feedhook", "config.json")
		}
	})

	return settings
}
