package datasource

import (
	"context"
	"log/slog"
	"time"

	"github.com/tbranch/foreman/internal/workorder"
)

// Source identifies which collaborator produced a record set.
type Source string

// Source values reported to the UI.
const (
	SourceAPI  Source = "api"
	SourceMock Source = "mock"
)

// Result is a loaded record set plus its provenance. When the API was
// unreachable, Source is SourceMock and FallbackReason carries the
// failure text; downstream store and filter logic never see the error.
type Result struct {
	Orders         []workorder.Order
	Total          int
	Source         Source
	FallbackReason string
}

// Loader retrieves the session record set, substituting generated data
// whenever the API fails within the configured timeout.
type Loader struct {
	fetcher Fetcher
	records int
	timeout time.Duration
	logger  *slog.Logger
}

const (
	defaultRecords      = 25000
	defaultFetchTimeout = 3 * time.Second
)

// NewLoader builds a Loader. A nil fetcher means mock-only operation:
// Load always generates. records bounds both the API request and the
// generated fallback set.
func NewLoader(fetcher Fetcher, records int, timeout time.Duration, logger *slog.Logger) *Loader {
	if records <= 0 {
		records = defaultRecords
	}
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		fetcher: fetcher,
		records: records,
		timeout: timeout,
		logger:  logger,
	}
}

// Load fetches the record set, falling back to generated data on any
// transport, timeout, or decode failure. Cancellation of ctx is returned
// as-is with no result applied: it is not a failure and produces no
// fallback.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	if l.fetcher == nil {
		orders := workorder.Generate(l.records)
		return Result{Orders: orders, Total: len(orders), Source: SourceMock}, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	orders, total, err := l.fetcher.FetchOrders(fetchCtx, l.records)
	if err == nil {
		l.logger.Info("loaded work orders from api", "count", len(orders), "total", total)
		return Result{Orders: orders, Total: total, Source: SourceAPI}, nil
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	l.logger.Warn("api fetch failed, generating fallback data", "error", err, "records", l.records)
	fallback := workorder.Generate(l.records)
	return Result{
		Orders:         fallback,
		Total:          len(fallback),
		Source:         SourceMock,
		FallbackReason: err.Error(),
	}, nil
}
