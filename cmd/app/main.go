package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Fivegen-LLC/qoe-monitor/infrastructure"
	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/environment"
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	if err := setupLogger(env.Monitor); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Debug().
		Any("app", env).
		Str("version", serviceVersion).
		Str("log path", env.Monitor.LogfilePath).
		Str("log level", env.Monitor.LogLevel).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		cancelFunc()
		log.Fatal().Err(err).Msg("main")
	}

	err = newRootCommand(kernel).ExecuteContext(cancelCtx)

	cancelFunc()
	kernel.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", bannerMessage(err))
		os.Exit(1)
	}
}

// setupLogger writes to the rolling log file, and to stderr as well in debug mode.
// When the log file can not be created logs go to stderr only.
func setupLogger(monitor environment.Monitor) (err error) {
	level, err := zerolog.ParseLevel(monitor.LogLevel)
	if err != nil {
		return fmt.Errorf("setupLogger: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}

	logWriter, err := setupRollingLogFile(monitor.LogfilePath)
	if err != nil {
		log.Logger = zerolog.New(console).With().Timestamp().Logger().Level(max(level, zerolog.WarnLevel))
		log.Warn().Err(err).Msg("setupLogger: log file disabled")
		return nil
	}

	var writer io.Writer = logWriter
	if monitor.IsDebug() {
		writer = zerolog.MultiLevelWriter(logWriter, console)
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return nil
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", statErr)
		}

		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15, // megabytes
		MaxAge:     30, // days
		MaxBackups: 10,
		Compress:   true,
	}, nil
}
