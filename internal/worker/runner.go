// Package worker runs the asynchronous scoring pipeline. Completed responses
// are either pushed onto an in-memory queue by the API or picked up by a
// database poller, then evaluated, classified, and persisted by a pool of
// workers.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nyashahama/wellscore-backend/internal/db"
	"github.com/nyashahama/wellscore-backend/internal/store"
)

// Enqueuer is the narrow interface the API layer uses to hand a response to
// the worker without importing the Runner itself.
type Enqueuer interface {
	// Enqueue submits a response for scoring. It never blocks: when the queue
	// is full the response is left to the poller, which finds it through its
	// pending score_status.
	Enqueue(responseID uuid.UUID)
}

// RunnerConfig tunes the worker pool. Zero values are replaced by the
// corresponding DefaultRunnerConfig fields.
type RunnerConfig struct {
	Workers      int
	PollInterval time.Duration
	JobTimeout   time.Duration
	MaxRetries   int
}

// DefaultRunnerConfig is the production tuning.
var DefaultRunnerConfig = RunnerConfig{
	Workers:      3,
	PollInterval: 30 * time.Second,
	JobTimeout:   5 * time.Minute,
	MaxRetries:   3,
}

// Runner owns the queue, the worker pool, and the pending-response poller.
// The queue is best-effort: a dropped enqueue is not lost work because the
// poller re-reads pending responses from the database. That also makes the
// pipeline crash-safe across process restarts.
type Runner struct {
	job    *Job
	q      db.Querier
	store  *store.Store
	cfg    RunnerConfig
	logger *slog.Logger
	queue  chan uuid.UUID
}

// NewRunner constructs a Runner. Pass DefaultRunnerConfig unless a test needs
// tighter timing.
func NewRunner(job *Job, q db.Querier, st *store.Store, cfg RunnerConfig, logger *slog.Logger) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultRunnerConfig.Workers
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultRunnerConfig.PollInterval
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = DefaultRunnerConfig.JobTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultRunnerConfig.MaxRetries
	}

	return &Runner{
		job:    job,
		q:      q,
		store:  st,
		cfg:    cfg,
		logger: logger,
		queue:  make(chan uuid.UUID, cfg.Workers*2),
	}
}

// Enqueue implements Enqueuer.
func (r *Runner) Enqueue(responseID uuid.UUID) {
	select {
	case r.queue <- responseID:
	default:
		r.logger.Warn("worker: queue full, leaving response to the poller",
			"response_id", responseID,
		)
	}
}

// Start runs the worker pool and the poller until ctx is cancelled. It blocks;
// call it from its own goroutine.
func (r *Runner) Start(ctx context.Context) {
	r.logger.Info("worker: starting",
		"workers", r.cfg.Workers,
		"poll_interval", r.cfg.PollInterval,
	)

	for i := 0; i < r.cfg.Workers; i++ {
		go r.work(ctx, i)
	}

	r.poll(ctx)
}

func (r *Runner) work(ctx context.Context, id int) {
	log := r.logger.With("worker_id", id)
	for {
		select {
		case <-ctx.Done():
			log.Debug("worker: stopping")
			return
		case responseID := <-r.queue:
			r.runWithRetry(ctx, responseID)
		}
	}
}

// poll periodically re-queues responses whose score_status is still pending.
// It catches enqueues dropped at a full queue and work left over from a crash.
func (r *Runner) poll(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("worker: poller stopping")
			return
		case <-ticker.C:
			r.pollOnce(ctx)
		}
	}
}

func (r *Runner) pollOnce(ctx context.Context) {
	pending, err := r.q.ListResponsesPendingScore(ctx)
	if err != nil {
		r.logger.Error("worker: listing pending responses failed", "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	r.logger.Debug("worker: poller found pending responses", "count", len(pending))
	for _, resp := range pending {
		select {
		case r.queue <- resp.ID:
		default:
			// Queue full; the next poll picks the rest up.
			return
		}
	}
}

// runWithRetry runs the job up to MaxRetries times with a linear backoff.
// When every attempt fails the response is marked failed so it leaves the
// poller's pending set and operators can see it.
func (r *Runner) runWithRetry(ctx context.Context, responseID uuid.UUID) {
	log := r.logger.With("response_id", responseID)

	for attempt := 1; attempt <= r.cfg.MaxRetries; attempt++ {
		jobCtx, cancel := context.WithTimeout(ctx, r.cfg.JobTimeout)
		err := r.job.Run(jobCtx, responseID)
		cancel()

		if err == nil {
			return
		}

		log.Error("worker: job attempt failed",
			"attempt", attempt,
			"max_retries", r.cfg.MaxRetries,
			"error", err,
		)

		if attempt < r.cfg.MaxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempt) * 2 * time.Second):
			}
		}
	}

	log.Error("worker: job failed permanently, marking response failed")
	if _, err := r.store.MarkScoringFailed(ctx, responseID); err != nil {
		log.Error("worker: could not mark response failed", "error", err)
	}
}
