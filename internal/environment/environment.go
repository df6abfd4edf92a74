package environment

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
)

type Environment struct {
	API
	Monitor
}

type API struct {
	BaseURL string        `validate:"required,http_url"`
	Timeout time.Duration `validate:"gt=0"`
}

type Monitor struct {
	DataDir       string `validate:"required"`
	LogfilePath   string
	LogLevel      string
	MapDebounce   time.Duration `validate:"gt=0"`
	ListenAddr    string
	NatsURL       string        `validate:"omitempty,url"`
	WatchInterval time.Duration `validate:"gt=0"`
}

var validate = validator.New()

func New() (e Environment, err error) {
	v := viper.New()
	v.SetEnvPrefix("QOE")
	v.AutomaticEnv()

	v.SetDefault("API_BASE_URL", constants.DefaultAPIBaseURL)
	v.SetDefault("API_TIMEOUT", constants.DefaultAPITimeout)
	v.SetDefault("DATA_DIR", constants.DefaultDataDir)
	v.SetDefault("LOG_FILE", constants.DefaultLogfilePath)
	v.SetDefault("LOG_LEVEL", constants.DefaultLogLevel)
	v.SetDefault("MAP_DEBOUNCE", constants.DefaultMapDebounce)
	v.SetDefault("LISTEN_ADDR", constants.DefaultListenAddr)
	v.SetDefault("WATCH_INTERVAL", constants.DefaultWatchPeriod)

	// optional config file, env still wins
	if configFile := v.GetString("CONFIG_FILE"); lo.IsNotEmpty(configFile) {
		v.SetConfigFile(configFile)
		if err = v.ReadInConfig(); err != nil {
			return e, fmt.Errorf("New: %w", err)
		}
	}

	e.API.BaseURL = v.GetString("API_BASE_URL")
	e.API.Timeout = v.GetDuration("API_TIMEOUT")

	e.Monitor.DataDir = v.GetString("DATA_DIR")
	e.Monitor.LogfilePath = v.GetString("LOG_FILE")
	e.Monitor.LogLevel = v.GetString("LOG_LEVEL")
	e.Monitor.MapDebounce = v.GetDuration("MAP_DEBOUNCE")
	e.Monitor.ListenAddr = v.GetString("LISTEN_ADDR")
	e.Monitor.NatsURL = v.GetString("NATS_URL")
	e.Monitor.WatchInterval = v.GetDuration("WATCH_INTERVAL")

	if err = e.validate(); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

func (e Environment) validate() (err error) {
	if err = validate.Struct(e); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	return nil
}

func (e Monitor) IsDebug() bool {
	return e.LogLevel == "debug"
}

func (e Monitor) NatsEnabled() bool {
	return lo.IsNotEmpty(e.NatsURL)
}
