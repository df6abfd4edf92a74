package mapdata

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/telemetry"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

type (
	IMapDataService interface {
		GetMapData(ctx context.Context, bounds *entities.Bounds) (points entities.MapDataPoints, err error)
	}
)

type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Snapshot is the loader view at a point in time.
type Snapshot struct {
	State     State              `json:"state"`
	Bounds    *entities.Bounds   `json:"bounds,omitempty"`
	Metric    string             `json:"metric"`
	Markers   []coloring.Marker  `json:"markers"`
	Stats     entities.AreaStats `json:"stats"`
	Error     string             `json:"error,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Loader keeps the markers of a map viewport. Bounds updates are debounced so
// that only the last bounds of a burst are fetched.
type Loader struct {
	service  IMapDataService
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mx         sync.Mutex
	snapshot   Snapshot
	timer      *time.Timer
	generation uint64
	closed     bool
	changes    chan Snapshot
}

func NewLoader(service IMapDataService, debounce time.Duration, metric string) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		service:  service,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
		snapshot: Snapshot{
			State:   StateIdle,
			Metric:  metric,
			Markers: []coloring.Marker{},
			Stats:   Stats(nil),
		},
		changes: make(chan Snapshot, 1),
	}
}

// UpdateBounds schedules a fetch after the debounce interval, replacing any
// pending one.
func (l *Loader) UpdateBounds(bounds entities.Bounds) (err error) {
	if err = ValidateBounds(bounds); err != nil {
		return fmt.Errorf("UpdateBounds: %w", err)
	}

	l.mx.Lock()
	defer l.mx.Unlock()

	if l.closed {
		return nil
	}

	l.snapshot.Bounds = &bounds
	l.snapshot.State = StatePending
	generation := l.nextGeneration()
	l.timer = time.AfterFunc(l.debounce, func() {
		l.fetch(l.ctx, generation)
	})
	l.notify()
	return nil
}

// Load fetches the current bounds right away. Without bounds the whole data
// set is requested.
func (l *Loader) Load(ctx context.Context) {
	l.mx.Lock()
	if l.closed {
		l.mx.Unlock()
		return
	}

	generation := l.nextGeneration()
	l.mx.Unlock()

	l.fetch(ctx, generation)
}

// Refetch is the manual retry.
func (l *Loader) Refetch(ctx context.Context) {
	l.Load(ctx)
}

// SetMetric recolors the markers.
func (l *Loader) SetMetric(metric string) {
	l.mx.Lock()
	defer l.mx.Unlock()

	l.snapshot.Metric = metric
	for i := range l.snapshot.Markers {
		paint(&l.snapshot.Markers[i], metric)
	}
	l.notify()
}

func (l *Loader) Snapshot() Snapshot {
	l.mx.Lock()
	defer l.mx.Unlock()

	return l.copySnapshot()
}

// Changes delivers the latest snapshot after every transition. Slow readers
// only see the newest one.
func (l *Loader) Changes() <-chan Snapshot {
	return l.changes
}

func (l *Loader) Close() {
	l.mx.Lock()
	defer l.mx.Unlock()

	if l.closed {
		return
	}

	l.closed = true
	l.nextGeneration()
	l.cancel()
	close(l.changes)
}

// nextGeneration invalidates the pending timer and any fetch in flight.
func (l *Loader) nextGeneration() uint64 {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}

	l.generation++
	return l.generation
}

func (l *Loader) fetch(ctx context.Context, generation uint64) {
	l.mx.Lock()
	if l.closed || generation != l.generation {
		l.mx.Unlock()
		return
	}

	var bounds *entities.Bounds
	if l.snapshot.Bounds != nil {
		bounds = new(entities.Bounds)
		*bounds = *l.snapshot.Bounds
	}

	l.snapshot.State = StateLoading
	l.snapshot.Error = ""
	l.notify()
	l.mx.Unlock()

	points, err := l.service.GetMapData(ctx, bounds)

	l.mx.Lock()
	defer l.mx.Unlock()

	if l.closed || generation != l.generation {
		log.Debug().Msg("fetch: stale map data discarded")
		return
	}

	telemetry.MapFetched(err == nil)
	l.snapshot.UpdatedAt = time.Now()
	if err != nil {
		log.Error().Err(err).Any("bounds", bounds).Msg("fetch: get map data error")
		l.snapshot.State = StateError
		l.snapshot.Error = errorMessage(err)
		l.snapshot.Markers = []coloring.Marker{}
		l.snapshot.Stats = Stats(nil)
		l.notify()
		return
	}

	l.snapshot.State = StateSuccess
	l.snapshot.Markers = Markers(FilterValidPoints(points), l.snapshot.Metric)
	l.snapshot.Stats = Stats(l.snapshot.Markers)
	l.notify()
}

// notify must be called with mx held.
func (l *Loader) notify() {
	if l.closed {
		return
	}

	snapshot := l.copySnapshot()
	select {
	case l.changes <- snapshot:
	default:
		select {
		case <-l.changes:
		default:
		}
		l.changes <- snapshot
	}
}

func (l *Loader) copySnapshot() Snapshot {
	snapshot := l.snapshot
	snapshot.Markers = append([]coloring.Marker(nil), l.snapshot.Markers...)
	if l.snapshot.Bounds != nil {
		bounds := *l.snapshot.Bounds
		snapshot.Bounds = &bounds
	}

	return snapshot
}

// Markers converts valid points into colored markers.
func Markers(points entities.MapDataPoints, metric string) []coloring.Marker {
	markers := make([]coloring.Marker, 0, len(points))
	for _, point := range points {
		lat, long, err := ParseCoordinates(point)
		if err != nil {
			continue
		}

		marker := coloring.Marker{
			MapDataPoint: point,
			Lat:          lat,
			Long:         long,
		}
		paint(&marker, metric)
		markers = append(markers, marker)
	}

	return markers
}

func paint(marker *coloring.Marker, metric string) {
	marker.Value = coloring.MetricValue(marker.MapDataPoint, metric)
	marker.Level = coloring.Classify(marker.Value, coloring.ThresholdsFor(metric))
	marker.Color = marker.Level.Color()
}

// errorMessage is the text shown in place of the markers.
func errorMessage(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && lo.IsNotEmpty(apiErr.Message) {
		return apiErr.Message
	}

	return defaultErrorMessage
}
