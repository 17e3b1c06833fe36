package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"tableflip.dev/vertcal/pkg/locale"
)

const layoutISO = "2006-01-02"

// Load reads ambient configuration from a .vertcal file (yaml implicit)
// in the current directory or VERTCAL_CONFIG_PATH, with VERTCAL_*
// environment variables taking precedence. The anchor is deliberately not
// configurable here; callers inject it. Load does not validate, since the
// result is usually completed by flags first.
func Load() (Options, error) {
	viper.SetDefault("locale", locale.Default)
	viper.SetDefault("prefetch_threshold", 1)
	viper.SetConfigName(".vertcal")
	viper.SetEnvPrefix("VERTCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("VERTCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Options{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	o := Default()
	o.Locale = viper.GetString("locale")
	o.PrefetchThreshold = viper.GetInt("prefetch_threshold")
	o.InitialPageOffset = viper.GetInt("initial_page_offset")

	var err error
	if o.Start, err = dateValue("start"); err != nil {
		return Options{}, err
	}
	if o.End, err = dateValue("end"); err != nil {
		return Options{}, err
	}
	return o, nil
}

func dateValue(key string) (time.Time, error) {
	raw := viper.GetString(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layoutISO, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", key, raw, err)
	}
	return t, nil
}
