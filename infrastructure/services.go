package infrastructure

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/alerting"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/auth"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/clientconfig"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapfeed"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/metrics"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/session"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/settings"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/storage"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/users"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/watch"
)

var (
	kvStorage     *storage.KV
	kvStorageOnce sync.Once
)

func (k *Kernel) InjectKVStorage() *storage.KV {
	kvStorageOnce.Do(func() {
		kvStorage = storage.NewKV(k.DB)
	})

	return kvStorage
}

var (
	sessionService     *session.Service
	sessionServiceOnce sync.Once
)

func (k *Kernel) InjectSessionService() *session.Service {
	sessionServiceOnce.Do(func() {
		sessionService = session.NewService(
			k.InjectKVStorage(),
		)
	})

	return sessionService
}

var (
	apiClientService     *apiclient.Service
	apiClientServiceOnce sync.Once
)

func (k *Kernel) InjectAPIClientService() *apiclient.Service {
	apiClientServiceOnce.Do(func() {
		apiClientService = apiclient.NewService(
			k.env.API.BaseURL,
			k.env.API.Timeout,
			k.InjectSessionService(),
		)
	})

	return apiClientService
}

var (
	authService     *auth.Service
	authServiceOnce sync.Once
)

func (k *Kernel) InjectAuthService() *auth.Service {
	authServiceOnce.Do(func() {
		authService = auth.NewService(
			k.InjectAPIClientService(),
			k.InjectSessionService(),
		)
	})

	return authService
}

var (
	metricsService     *metrics.Service
	metricsServiceOnce sync.Once
)

func (k *Kernel) InjectMetricsService() *metrics.Service {
	metricsServiceOnce.Do(func() {
		metricsService = metrics.NewService(
			k.InjectAPIClientService(),
		)
	})

	return metricsService
}

var (
	mapDataService     *mapdata.Service
	mapDataServiceOnce sync.Once
)

func (k *Kernel) InjectMapDataService() *mapdata.Service {
	mapDataServiceOnce.Do(func() {
		mapDataService = mapdata.NewService(
			k.InjectAPIClientService(),
		)
	})

	return mapDataService
}

var (
	clientConfigService     *clientconfig.Service
	clientConfigServiceOnce sync.Once
)

func (k *Kernel) InjectClientConfigService() *clientconfig.Service {
	clientConfigServiceOnce.Do(func() {
		clientConfigService = clientconfig.NewService(
			k.InjectAPIClientService(),
		)
	})

	return clientConfigService
}

var (
	usersService     *users.Service
	usersServiceOnce sync.Once
)

func (k *Kernel) InjectUsersService() *users.Service {
	usersServiceOnce.Do(func() {
		usersService = users.NewService(
			k.InjectAPIClientService(),
		)
	})

	return usersService
}

var (
	settingsService     *settings.Service
	settingsServiceOnce sync.Once
)

func (k *Kernel) InjectSettingsService() *settings.Service {
	settingsServiceOnce.Do(func() {
		settingsService = settings.NewService(
			k.InjectKVStorage(),
		)
	})

	return settingsService
}

var (
	broker     *alerting.Broker
	brokerOnce sync.Once
)

// InjectBroker connects to NATS on first use. It returns nil when NATS is
// disabled or unreachable.
func (k *Kernel) InjectBroker() *alerting.Broker {
	brokerOnce.Do(func() {
		if !k.env.Monitor.NatsEnabled() {
			return
		}

		var err error
		if broker, err = alerting.NewBroker(k.env.Monitor.NatsURL); err != nil {
			log.Error().Err(err).Str("url", k.env.Monitor.NatsURL).Msg("InjectBroker: alert publishing disabled")
			broker = nil
		}
	})

	return broker
}

var (
	alertingService     *alerting.Service
	alertingServiceOnce sync.Once
)

func (k *Kernel) InjectAlertingService() *alerting.Service {
	alertingServiceOnce.Do(func() {
		var publisher alerting.IPublisher
		if b := k.InjectBroker(); b != nil {
			publisher = b
		}

		alertingService = alerting.NewService(
			k.InjectSettingsService(),
			publisher,
		)
	})

	return alertingService
}

var (
	watchService     *watch.Service
	watchServiceOnce sync.Once
)

func (k *Kernel) InjectWatchService() *watch.Service {
	watchServiceOnce.Do(func() {
		watchService = watch.NewService(
			k.InjectMetricsService(),
			k.InjectMapDataService(),
			k.InjectAlertingService(),
			k.InjectSessionService(),
		)
	})

	return watchService
}

var (
	mapFeedServer     *mapfeed.Server
	mapFeedServerOnce sync.Once
)

func (k *Kernel) InjectMapFeedServer() *mapfeed.Server {
	mapFeedServerOnce.Do(func() {
		mapFeedServer = mapfeed.NewServer(
			k.InjectMapDataService(),
			k.env.Monitor.MapDebounce,
			coloring.MetricSignal,
		)
	})

	return mapFeedServer
}
