package util

import (
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "SMART_HOME"

var Config = viper.New()

var ErrNoConfigFile = errors.New("no config file loaded")

var config_listeners []func()

// RegisterNewConfigListener adds a listener unless the same function is
// already registered. Functions are compared by code pointer, so every
// closure created from one func literal counts as the same listener and only
// the first one registered is kept.
func RegisterNewConfigListener(new_listener func()) {
	for _, listener := range config_listeners {
		if reflect.ValueOf(new_listener).Pointer() == reflect.ValueOf(listener).Pointer() {
			Logger.Warn().Msg("config listener already registered")
			return
		}
	}
	config_listeners = append(config_listeners, new_listener)
}

func OnNewConfig() {
	for _, listener := range config_listeners {
		listener()
	}
}

func setDefaults() {
	Config.SetDefault("log_level", "warn")
	Config.SetDefault("output", "text")
	Config.SetDefault("watch", false)
	Config.SetDefault("home.devices", DefaultDevices())
	Config.SetDefault("home.scenario", DefaultScenario())
}

// SetupConfig replaces Config with a fresh instance and loads defaults, the
// config file and the environment into it. An empty cfgFile searches the
// usual locations for smart_home.{yaml,json,toml}; a missing file is fine, a
// broken one is not. Flags must be bound again afterwards.
func SetupConfig(cfgFile string) error {
	Config = viper.New()
	Config.SetEnvPrefix(ENV_PREFIX)
	Config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults()

	// config file
	if cfgFile != "" {
		Config.SetConfigFile(cfgFile)
	} else {
		Config.SetConfigName("smart_home")
		Config.AddConfigPath("./")
		Config.AddConfigPath("./config")
		Config.AddConfigPath("/etc")
		Config.AddConfigPath("/smart_home")
	}

	err := Config.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			Logger.Debug().Msg("no config file found, using defaults")
		} else {
			return errors.Wrap(err, "reading config file")
		}
	} else {
		Logger.Debug().Msgf("using config file %s", Config.ConfigFileUsed())
	}

	// environment variables
	Config.AutomaticEnv()

	return nil
}

// WatchConfig re-runs the config listeners whenever the config file changes.
// It fails with ErrNoConfigFile when SetupConfig did not load a file, since
// there is nothing to watch.
func WatchConfig() error {
	if Config.ConfigFileUsed() == "" {
		return ErrNoConfigFile
	}
	Config.OnConfigChange(func(e fsnotify.Event) {
		Logger.Info().Msgf("Config file changed: %v", e.Name)
		Logger.Debug().Msgf("Config Additional Info: %v", e.String())
		OnNewConfig()
	})
	Config.WatchConfig()
	return nil
}
