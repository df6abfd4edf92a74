package mapfeed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

type (
	IMapDataService interface {
		GetMapData(ctx context.Context, bounds *entities.Bounds) (points entities.MapDataPoints, err error)
	}
)

// Server exposes the map feed to local dashboards.
type Server struct {
	mapDataService IMapDataService
	debounce       time.Duration
	metric         string

	engine   *gin.Engine
	upgrader websocket.Upgrader
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func NewServer(mapDataService IMapDataService, debounce time.Duration, metric string) *Server {
	s := &Server{
		mapDataService: mapDataService,
		debounce:       debounce,
		metric:         metric,
		engine:         gin.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}

	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.GET(constants.RouteHealth, s.health)
	s.engine.GET(constants.RouteMetrics, gin.WrapH(promhttp.Handler()))
	s.engine.GET(constants.RouteMapFeed, s.serveMapFeed)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) (err error) {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Run: map feed server started")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("Run: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err = server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("Run: shutdown: %w", err)
		}

		log.Info().Msg("Run: map feed server stopped")
		return nil
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(started)).
			Str("client", c.ClientIP()).
			Msg("requestLogger: http request")
	}
}
