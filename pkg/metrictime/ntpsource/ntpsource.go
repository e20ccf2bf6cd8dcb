// Package ntpsource provides an NTP-corrected metrictime.Source. It queries
// an NTP server for the local clock's offset and applies that offset to
// every reading, so emitted times track network time even when the host
// clock drifts.
package ntpsource

import (
	"log/slog"
	"sync"
	"time"

	"github.com/beevik/ntp"

	"github.com/reuschj/metric-time/pkg/metrictime"
)

const (
	// DefaultSyncInterval is how often the offset is refreshed when the
	// config does not say otherwise.
	DefaultSyncInterval = 5 * time.Minute

	initialBackoff = 5 * time.Second
	maxBackoff     = 5 * time.Minute
	queryTimeout   = 3 * time.Second
)

// Config holds NTP source settings.
type Config struct {
	// Server is the NTP server host, e.g. "pool.ntp.org".
	Server string
	// SyncInterval is how often the offset is refreshed; non-positive
	// values fall back to DefaultSyncInterval.
	SyncInterval time.Duration
	// Logger receives sync diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// queryFunc matches the NTP query call so tests can stub the network.
type queryFunc func(server string) (*ntp.Response, error)

func defaultQuery(server string) (*ntp.Response, error) {
	return ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: queryTimeout})
}

// Source corrects the system clock by a periodically refreshed NTP offset.
// A failed sync is never fatal: the source keeps serving with the last
// known offset (zero before the first success) and retries on an
// exponential backoff schedule instead of the regular interval.
//
// Syncing happens lazily inside Now, so a due refresh adds at most one
// query round trip (bounded by a short timeout) to that call.
type Source struct {
	server       string
	syncInterval time.Duration
	logger       *slog.Logger
	query        queryFunc

	mu        sync.Mutex
	offset    time.Duration
	lastSync  time.Time
	attemptAt time.Time
	backoff   time.Duration
	lastErr   error
}

// New queries the server once to prime the offset and returns the source.
// A failed initial query is logged, not returned: the offset stays zero and
// Now retries on the backoff schedule.
func New(cfg Config) *Source {
	return newSource(cfg, defaultQuery)
}

func newSource(cfg Config, query queryFunc) *Source {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Source{
		server:       cfg.Server,
		syncInterval: interval,
		logger:       logger,
		query:        query,
	}
	s.mu.Lock()
	s.syncLocked()
	s.mu.Unlock()
	return s
}

// Now returns the system clock adjusted by the last known offset, refreshing
// the offset first when the sync interval (or failure backoff) has elapsed.
func (s *Source) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maybeSyncLocked()
	return time.Now().Add(s.offset)
}

// Health reports whether the last sync succeeded, along with the applied
// offset, the time of the last successful sync, and the last sync error.
func (s *Source) Health() (healthy bool, offset time.Duration, lastSync time.Time, lastErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr == nil, s.offset, s.lastSync, s.lastErr
}

// maybeSyncLocked refreshes the offset when due. While the last sync
// failed, the backoff replaces the regular interval and is measured from
// the last attempt rather than the last success.
func (s *Source) maybeSyncLocked() {
	due := s.syncInterval
	since := time.Since(s.lastSync)
	if s.backoff > 0 {
		due = s.backoff
		since = time.Since(s.attemptAt)
	}
	if since < due {
		return
	}
	s.syncLocked()
}

func (s *Source) syncLocked() {
	s.attemptAt = time.Now()
	resp, err := s.query(s.server)
	if err != nil {
		s.lastErr = err
		if s.backoff == 0 {
			s.backoff = initialBackoff
		} else if s.backoff < maxBackoff {
			s.backoff *= 2
			if s.backoff > maxBackoff {
				s.backoff = maxBackoff
			}
		}
		s.logger.Warn("NTP sync failed, keeping previous offset",
			slog.String("server", s.server),
			slog.Duration("backoff", s.backoff),
			slog.String("error", err.Error()),
		)
		return
	}
	s.offset = resp.ClockOffset
	s.lastSync = time.Now()
	s.backoff = 0
	s.lastErr = nil
	s.logger.Debug("NTP sync succeeded",
		slog.String("server", s.server),
		slog.Duration("offset", s.offset),
	)
}

// Ensure Source implements metrictime.Source at compile time.
var _ metrictime.Source = (*Source)(nil)
