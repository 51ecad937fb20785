// Package xviper wraps viper with the small set of persisted configuration
// values the reporter recognizes.
package xviper

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/sodatea/berry/common"
)

const (
	EnableTimersKey       = `reporter.enableTimers`
	EnableProgressBarsKey = `reporter.enableProgressBars`
	EnableColorsKey       = `reporter.enableColors`
	ProgressBarStyleKey   = `reporter.progressBarStyle`
	JsonOutputKey         = `reporter.jsonOutput`
)

var (
	settings *viper.Viper
	once     sync.Once
)

func config() *viper.Viper {
	once.Do(func() {
		settings = viper.New()
		settings.SetDefault(EnableTimersKey, true)
		settings.SetDefault(EnableProgressBarsKey, true)
		settings.SetDefault(EnableColorsKey, true)
		settings.SetDefault(ProgressBarStyleKey, "")
		settings.SetDefault(JsonOutputKey, false)

		settings.SetConfigName("berry")
		settings.SetConfigType("yaml")
		if home, err := os.UserConfigDir(); err == nil {
			settings.AddConfigPath(filepath.Join(home, "berry"))
		}
		settings.AddConfigPath(".")
		if err := settings.ReadInConfig(); err != nil {
			common.Trace("No configuration file found, using defaults: %v", err)
		}
	})
	return settings
}

func GetBool(key string) bool {
	return config().GetBool(key)
}

func GetString(key string) string {
	return config().GetString(key)
}

func Set(key string, value interface{}) {
	config().Set(key, value)
}

func EnableTimers() bool {
	return GetBool(EnableTimersKey)
}

func EnableProgressBars() bool {
	return GetBool(EnableProgressBarsKey)
}

func EnableColors() bool {
	return GetBool(EnableColorsKey)
}

func ProgressBarStyle() string {
	return GetString(ProgressBarStyleKey)
}

func JsonOutput() bool {
	return GetBool(JsonOutputKey)
}
