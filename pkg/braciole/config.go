package braciole

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/carmine-ui/braciole/pkg/braciole/internal"
)

// Config mirrors Options in TOML form so deployments can tune the client
// without a rebuild.
type Config struct {
	WindowTitle      string   `toml:"window_title"`
	Fullscreen       bool     `toml:"fullscreen"`
	Borderless       bool     `toml:"borderless"`
	FontPath         string   `toml:"font_path"`
	AccentColor      string   `toml:"accent_color"` // "RRGGBB" or "#RRGGBB"
	LogPath          string   `toml:"log_path"`
	LogLevel         string   `toml:"log_level"`
	Locales          []string `toml:"locales"`
	BackButtonDevice string   `toml:"back_button_device"`
	BackButtonCode   uint16   `toml:"back_button_code"`
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		internal.Logger().Warn("Unknown config keys ignored", "path", path, "keys", strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Options converts the config into framework Options.
func (c Config) Options() Options {
	return Options{
		WindowTitle: c.WindowTitle,
		WindowOptions: internal.WindowOptions{
			Fullscreen: c.Fullscreen,
			Borderless: c.Borderless,
		},
		FontPath:         c.FontPath,
		AccentColorHex:   parseHexColor(c.AccentColor),
		LogPath:          c.LogPath,
		LogLevel:         c.LogLevel,
		BackButtonDevice: c.BackButtonDevice,
		BackButtonCode:   c.BackButtonCode,
	}
}

// parseHexColor accepts "RRGGBB" with an optional leading '#'.
// Returns 0 (theme default) on empty or malformed input.
func parseHexColor(raw string) uint32 {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(raw) != 6 {
		return 0
	}
	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
