package records

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/kdiomande/cntsci-flux/internal/domain"
	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/kdiomande/cntsci-flux/internal/pkg/logger"
)

// Service polls the Apps-Script web endpoint backing the distribution
// sheet and keeps the latest snapshot in memory. The reporting engine
// only ever reads whole snapshots; a failed refresh leaves the previous
// one in place.
type Service struct {
	sheetURL string
	client   *http.Client

	mu       sync.RWMutex
	snapshot []domain.DistributionRecord
	lastSync time.Time
}

func NewService(sheetURL string) *Service {
	return &Service{
		sheetURL: sheetURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Snapshot returns the current record collection. The slice is shared
// and must be treated as immutable by callers; the engine never mutates
// its input.
func (s *Service) Snapshot() []domain.DistributionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Service) LastSync() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync
}

// Refresh fetches the full record collection and swaps it in. The sheet
// endpoint occasionally answers 5xx while a write is in flight, so the
// GET is retried on a short constant backoff.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	url := fmt.Sprintf("%s?action=get_dist&_t=%d", s.sheetURL, time.Now().UnixMilli())

	var body []byte
	err := backoff.Retry(
		func() error {
			var fetchErr error
			body, fetchErr = s.get(ctx, url)
			return fetchErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		logger.Errorf(ctx, "refresh snapshot: %s", err.Error())
		return 0, fmt.Errorf("%w: %s", constants.ErrSheetUnavailable, err.Error())
	}

	fetched, err := decodeSnapshot(body)
	if err != nil {
		return 0, fmt.Errorf("decode snapshot: %w", err)
	}

	s.mu.Lock()
	s.snapshot = fetched
	s.lastSync = time.Now()
	s.mu.Unlock()

	logger.Infof(ctx, "snapshot refreshed: %d records", len(fetched))
	return len(fetched), nil
}

// Run refreshes on a fixed cadence until the context is cancelled. The
// initial fetch failing is logged, not fatal: the dashboard starts empty
// and fills in on the next tick.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if _, err := s.Refresh(ctx); err != nil {
		logger.Warnf(ctx, "initial snapshot fetch failed: %s", err.Error())
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				logger.Warnf(ctx, "scheduled snapshot fetch failed: %s", err.Error())
			}
		}
	}
}

func (s *Service) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http.Get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// decodeSnapshot unmarshals the endpoint's JSON array. Legacy
// deployments published the sheet as an HTML table instead; when the
// payload is not JSON we fall back to parsing that shape. Records with
// no ID get one so the frontend can key rows.
func decodeSnapshot(body []byte) ([]domain.DistributionRecord, error) {
	var fetched []domain.DistributionRecord

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		if err := sonic.Unmarshal(body, &fetched); err != nil {
			return nil, fmt.Errorf("sonic.Unmarshal: %w", err)
		}
	} else {
		var err error
		fetched, err = ParseLegacyTable(strings.NewReader(trimmed))
		if err != nil {
			return nil, fmt.Errorf("parse legacy table: %w", err)
		}
	}

	for i := range fetched {
		if fetched[i].ID == "" {
			fetched[i].ID = uuid.NewString()
		}
	}
	return fetched, nil
}
