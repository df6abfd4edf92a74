package infrastructure

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/settings"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/storage"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/watch"
	"github.com/Fivegen-LLC/qoe-monitor/internal/environment"
)

type IInjector interface {
	// MQ handlers.

	InjectWatchMQHandler() *watch.MQHandler
	InjectSettingsMQHandler() *settings.MQHandler
}

type Kernel struct {
	env environment.Environment

	DB *badger.DB
}

func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	if k.DB, err = storage.Open(env.Monitor.DataDir); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	return k, nil
}

func (k *Kernel) Env() environment.Environment {
	return k.env
}

func (k *Kernel) InjectWatchMQHandler() *watch.MQHandler {
	return watch.NewMQHandler(
		k.InjectWatchService(),
	)
}

func (k *Kernel) InjectSettingsMQHandler() *settings.MQHandler {
	return settings.NewMQHandler(
		k.InjectSettingsService(),
	)
}

// Close releases the broker connection and the local store.
func (k *Kernel) Close() {
	// only when a command connected it
	if broker != nil {
		broker.Close()
	}

	if err := k.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Close: close badger error")
	}
}
