package mapfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/telemetry"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

const (
	MessageSnapshot = "snapshot"
	MessageError    = "error"
)

// ClientMessage is either a viewport update, a metric switch or a retry action.
type ClientMessage struct {
	Action  string   `json:"action,omitempty"`
	Metric  string   `json:"metric,omitempty"`
	MinLat  *float64 `json:"minLat,omitempty"`
	MaxLat  *float64 `json:"maxLat,omitempty"`
	MinLong *float64 `json:"minLong,omitempty"`
	MaxLong *float64 `json:"maxLong,omitempty"`
}

func (m ClientMessage) bounds() (bounds entities.Bounds, ok bool) {
	if m.MinLat == nil || m.MaxLat == nil || m.MinLong == nil || m.MaxLong == nil {
		return bounds, false
	}

	return entities.Bounds{
		MinLat:  *m.MinLat,
		MaxLat:  *m.MaxLat,
		MinLong: *m.MinLong,
		MaxLong: *m.MaxLong,
	}, true
}

type ServerMessage struct {
	Type     string            `json:"type"`
	Snapshot *mapdata.Snapshot `json:"snapshot,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func (s *Server) serveMapFeed(c *gin.Context) {
	metric := c.DefaultQuery("metric", s.metric)
	if !lo.Contains([]string{coloring.MetricSignal, coloring.MetricQuality}, metric) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown metric %q", metric)})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("serveMapFeed: upgrade error")
		return
	}

	telemetry.MapFeedClientConnected()
	defer telemetry.MapFeedClientDisconnected()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	f := &feed{
		conn:    conn,
		loader:  mapdata.NewLoader(s.mapDataService, s.debounce, metric),
		replies: make(chan ServerMessage, 8),
	}

	var wg conc.WaitGroup
	wg.Go(f.write)
	wg.Go(func() {
		f.loader.Load(ctx)
	})

	f.read(ctx)
	f.loader.Close()
	cancel()
	wg.Wait()

	log.Debug().
		Str("client", c.ClientIP()).
		Msg("serveMapFeed: connection closed")
}

type feed struct {
	conn    *websocket.Conn
	loader  *mapdata.Loader
	replies chan ServerMessage
}

func (f *feed) read(ctx context.Context) {
	f.conn.SetReadLimit(4096)
	_ = f.conn.SetReadDeadline(time.Now().Add(constants.WSPongWait))
	f.conn.SetPongHandler(func(string) error {
		return f.conn.SetReadDeadline(time.Now().Add(constants.WSPongWait))
	})

	for {
		_, data, err := f.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("read: websocket read error")
			}
			return
		}

		var message ClientMessage
		if err = json.Unmarshal(data, &message); err != nil {
			f.reply(ServerMessage{Type: MessageError, Error: fmt.Sprintf("malformed message: %v", err)})
			continue
		}

		if err = f.handle(ctx, message); err != nil {
			f.reply(ServerMessage{Type: MessageError, Error: err.Error()})
		}
	}
}

func (f *feed) handle(ctx context.Context, message ClientMessage) (err error) {
	if message.Action == constants.MapFeedActionRetry {
		go f.loader.Refetch(ctx)
		return nil
	}

	if lo.IsNotEmpty(message.Action) {
		return fmt.Errorf("handle: unknown action %q", message.Action)
	}

	if lo.IsNotEmpty(message.Metric) {
		if !lo.Contains([]string{coloring.MetricSignal, coloring.MetricQuality}, message.Metric) {
			return fmt.Errorf("handle: unknown metric %q", message.Metric)
		}
		f.loader.SetMetric(message.Metric)
	}

	bounds, ok := message.bounds()
	if !ok {
		if lo.IsEmpty(message.Metric) {
			return fmt.Errorf("handle: bounds require minLat, maxLat, minLong and maxLong")
		}
		return nil
	}

	if err = f.loader.UpdateBounds(bounds); err != nil {
		return fmt.Errorf("handle: %w", err)
	}

	return nil
}

func (f *feed) reply(message ServerMessage) {
	select {
	case f.replies <- message:
	default:
		log.Warn().Str("error", message.Error).Msg("reply: reply queue full, message dropped")
	}
}

// write owns every write to the connection and returns once the loader is closed.
func (f *feed) write() {
	ticker := time.NewTicker(constants.WSPingPeriod)
	defer func() {
		ticker.Stop()
		_ = f.conn.Close()
	}()

	for {
		select {
		case snapshot, ok := <-f.loader.Changes():
			if !ok {
				_ = f.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(constants.WSWriteTimeout))
				return
			}

			if err := f.send(ServerMessage{Type: MessageSnapshot, Snapshot: &snapshot}); err != nil {
				log.Error().Err(err).Msg("write: send snapshot error")
				return
			}

		case message := <-f.replies:
			if err := f.send(message); err != nil {
				log.Error().Err(err).Msg("write: send reply error")
				return
			}

		case <-ticker.C:
			if err := f.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(constants.WSWriteTimeout)); err != nil {
				log.Error().Err(err).Msg("write: ping websocket failed")
				return
			}
		}
	}
}

func (f *feed) send(message ServerMessage) (err error) {
	_ = f.conn.SetWriteDeadline(time.Now().Add(constants.WSWriteTimeout))
	if err = f.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	return nil
}
