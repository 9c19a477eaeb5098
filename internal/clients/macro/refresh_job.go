package macro

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rmoura/advisor/internal/events"
)

// RefreshJob keeps the macro snapshot cache warm. Registered with the
// scheduler so recommendation requests rarely pay the fetch latency.
type RefreshJob struct {
	client  *Client
	events  *events.Manager
	timeout time.Duration
	log     zerolog.Logger
}

// NewRefreshJob creates the scheduled refresh job
func NewRefreshJob(client *Client, eventManager *events.Manager, timeout time.Duration, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		client:  client,
		events:  eventManager,
		timeout: timeout,
		log:     log.With().Str("job", "macro_refresh").Logger(),
	}
}

// Name returns the job identifier for scheduler logs
func (j *RefreshJob) Name() string {
	return "macro_snapshot_refresh"
}

// Run fetches a fresh snapshot. A failed refresh is logged, not fatal:
// stale or absent macro data degrades projections, it never stops them.
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.client.Refresh(ctx); err != nil {
		j.events.EmitError("macro", err, nil)
		return err
	}

	j.events.Emit(events.MacroSnapshotRefreshed, "macro", nil)
	return nil
}
