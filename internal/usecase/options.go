package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/slidey/internal/domain"
)

type options struct {
	cfg      domain.Config
	resolver *domain.VarResolver
	log      *slog.Logger
	now      func() time.Time
}

func defaultOptions() options {
	return options{
		cfg:      domain.DefaultConfig(),
		resolver: domain.NewVarResolver(),
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:      time.Now,
	}
}

// Option tunes the deck use cases.
type Option func(*options)

// WithConfig applies project defaults from slidey.yaml.
func WithConfig(cfg domain.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

func WithResolver(vr *domain.VarResolver) Option {
	return func(o *options) {
		if vr != nil {
			o.resolver = vr
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
