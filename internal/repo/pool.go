package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// NewPool opens a connection pool for dsn and pings it. pgx reports every
// query at its info level; those lines are emitted as zerolog debug events,
// so SQL only shows up when the logger runs at debug or trace.
func NewPool(ctx context.Context, dsn string, log zerolog.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.NewPool: parse config: %w", err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   tracelog.LoggerFunc(pgxLogFunc(log.With().Str("component", "pgx").Logger())),
		LogLevel: traceLevel(log.GetLevel()),
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("repo.NewPool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.NewPool: ping: %w", err)
	}
	return pool, nil
}

func traceLevel(l zerolog.Level) tracelog.LogLevel {
	switch {
	case l <= zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case l <= zerolog.DebugLevel:
		return tracelog.LogLevelInfo
	case l <= zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}

// pgxLogFunc maps pgx trace levels onto zerolog events, one step quieter
// below warn.
func pgxLogFunc(log zerolog.Logger) func(context.Context, tracelog.LogLevel, string, map[string]any) {
	return func(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		var ev *zerolog.Event
		switch level {
		case tracelog.LogLevelNone:
			return
		case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
			ev = log.Trace()
		case tracelog.LogLevelInfo:
			ev = log.Debug()
		case tracelog.LogLevelWarn:
			ev = log.Warn()
		case tracelog.LogLevelError:
			ev = log.Error()
		default:
			ev = log.Info().Str("pgx_level", level.String())
		}
		if len(data) > 0 {
			ev = ev.Fields(data)
		}
		ev.Msg(msg)
	}
}
