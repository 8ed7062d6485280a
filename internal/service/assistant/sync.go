package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/heartmarshall/receptionist-backend/internal/adapter/vapi"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/observer"
)

type syncRepo interface {
	GetByBusiness(ctx context.Context, businessID uuid.UUID) (*domain.Assistant, error)
	GetConfig(ctx context.Context, businessID uuid.UUID) (*domain.AssistantConfiguration, error)
	SetExternalID(ctx context.Context, id uuid.UUID, externalID string) error
	SetSyncState(ctx context.Context, id uuid.UUID, status domain.SyncStatus, syncedAt *time.Time, syncErr *string) error
}

type platform interface {
	CreateAssistant(ctx context.Context, a vapi.Assistant) (*vapi.AssistantRef, error)
	UpdateAssistant(ctx context.Context, id string, a vapi.Assistant) (*vapi.AssistantRef, error)
}

// SyncConfig tunes the sync worker pool.
type SyncConfig struct {
	Workers       int
	QueueSize     int
	MaxElapsed    time.Duration
	ServerURL     string // public base URL the platform calls back
	WebhookSecret string
}

type syncTask struct {
	ctx        context.Context
	businessID uuid.UUID
}

// ErrQueueFull is returned by Submit when the sync backlog is at capacity.
var ErrQueueFull = fmt.Errorf("sync queue full: %w", domain.ErrUnavailable)

// Syncer pushes assistant configurations to the voice platform from a
// bounded worker pool, retrying transient failures with exponential backoff.
// Submit never waits for a worker: jobs go to a bounded queue drained by a
// dispatcher, and a full queue is rejected.
type Syncer struct {
	log      *slog.Logger
	repo     syncRepo
	platform platform
	cfg      SyncConfig
	pool     *ants.PoolWithFunc
	now      func() time.Time

	mu         sync.RWMutex
	closed     bool
	queue      chan syncTask
	dispatched chan struct{}
}

// NewSyncer starts the worker pool and its dispatcher.
func NewSyncer(cfg SyncConfig, repo syncRepo, p platform, logger *slog.Logger) (*Syncer, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = cfg.Workers * 16
	}

	s := &Syncer{
		log:        logger.With("service", "assistant_sync"),
		repo:       repo,
		platform:   p,
		cfg:        cfg,
		now:        time.Now,
		queue:      make(chan syncTask, cfg.QueueSize),
		dispatched: make(chan struct{}),
	}

	pool, err := ants.NewPoolWithFunc(cfg.Workers, func(i any) {
		task, ok := i.(syncTask)
		if !ok {
			s.log.Error("invalid sync task", slog.Any("task", i))
			return
		}
		_ = s.Run(task.ctx, task.businessID)
	},
		ants.WithExpiryDuration(time.Minute),
		ants.WithPanicHandler(func(p any) {
			s.log.Error("panic in sync worker", slog.Any("panic", p))
			observer.IncAssistantSync("panic")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create sync pool: %w", err)
	}
	s.pool = pool

	go s.dispatch()

	s.log.Info("sync pool started", slog.Int("workers", cfg.Workers), slog.Int("queue", cfg.QueueSize))
	return s, nil
}

// dispatch hands queued jobs to the pool, waiting for a free worker.
func (s *Syncer) dispatch() {
	defer close(s.dispatched)
	for task := range s.queue {
		if err := s.pool.Invoke(task); err != nil {
			observer.IncAssistantSync("rejected")
			s.log.Error("dispatch sync job",
				slog.String("business_id", task.businessID.String()),
				slog.String("error", err.Error()))
		}
	}
}

// Submit queues a sync of the business assistant and returns at once. The
// job outlives ctx but keeps its values. A full queue yields ErrQueueFull.
func (s *Syncer) Submit(ctx context.Context, businessID uuid.UUID) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("submit sync: %w", ants.ErrPoolClosed)
	}

	select {
	case s.queue <- syncTask{ctx: context.WithoutCancel(ctx), businessID: businessID}:
		return nil
	default:
		observer.IncAssistantSync("rejected")
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits up to timeout for queued and running
// jobs, then stops the pool.
func (s *Syncer) Close(timeout time.Duration) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	deadline := time.Now().Add(timeout)
	select {
	case <-s.dispatched:
	case <-time.After(timeout):
		s.log.Warn("sync queue not drained before shutdown", slog.Int("pending", len(s.queue)))
	}

	remaining := time.Until(deadline)
	if remaining <= 0 {
		s.pool.Release()
		return nil
	}
	return s.pool.ReleaseTimeout(remaining)
}

// Run pushes one assistant synchronously and records the outcome on its
// configuration.
func (s *Syncer) Run(ctx context.Context, businessID uuid.UUID) error {
	log := s.log.With(slog.String("business_id", businessID.String()))

	a, err := s.repo.GetByBusiness(ctx, businessID)
	if err != nil {
		log.ErrorContext(ctx, "load assistant", slog.String("error", err.Error()))
		return fmt.Errorf("sync load assistant: %w", err)
	}
	cfg, err := s.repo.GetConfig(ctx, businessID)
	if err != nil {
		log.ErrorContext(ctx, "load configuration", slog.String("error", err.Error()))
		return fmt.Errorf("sync load configuration: %w", err)
	}

	doc := s.document(a, cfg)
	externalID := a.ExternalID

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 15 * time.Second
	policy.MaxElapsedTime = s.cfg.MaxElapsed
	policy.Reset()

	notify := func(err error, d time.Duration) {
		log.WarnContext(ctx, "retrying assistant sync", slog.String("error", err.Error()), slog.Duration("after", d))
	}

	var ref *vapi.AssistantRef
	err = backoff.RetryNotify(func() error {
		var err error
		if externalID != nil {
			ref, err = s.platform.UpdateAssistant(ctx, *externalID, doc)
		} else {
			ref, err = s.platform.CreateAssistant(ctx, doc)
		}
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(policy, ctx), notify)

	if err != nil {
		msg := err.Error()
		if stateErr := s.repo.SetSyncState(ctx, cfg.ID, domain.SyncStatusFailed, nil, &msg); stateErr != nil {
			log.ErrorContext(ctx, "record sync failure", slog.String("error", stateErr.Error()))
		}
		observer.IncAssistantSync("failed")
		log.WarnContext(ctx, "assistant sync failed", slog.String("error", msg))
		return fmt.Errorf("sync assistant: %w", err)
	}

	if externalID == nil || *externalID != ref.ID {
		if err := s.repo.SetExternalID(ctx, a.ID, ref.ID); err != nil {
			log.ErrorContext(ctx, "store external id", slog.String("error", err.Error()))
			return fmt.Errorf("sync store external id: %w", err)
		}
	}

	now := s.now()
	if err := s.repo.SetSyncState(ctx, cfg.ID, domain.SyncStatusSynced, &now, nil); err != nil {
		log.ErrorContext(ctx, "record sync success", slog.String("error", err.Error()))
		return fmt.Errorf("sync record state: %w", err)
	}

	observer.IncAssistantSync("synced")
	log.InfoContext(ctx, "assistant synced", slog.String("external_id", ref.ID))
	return nil
}

func (s *Syncer) document(a *domain.Assistant, cfg *domain.AssistantConfiguration) vapi.Assistant {
	doc := vapi.Assistant{
		Name:         a.Name,
		FirstMessage: a.FirstMessage,
		Model: vapi.Model{
			Provider: string(a.ModelProvider),
			Model:    a.Model,
			Messages: []vapi.Message{{Role: "system", Content: cfg.Voice.Text}},
		},
		Voice:    vapi.Voice{Provider: string(a.VoiceProvider), VoiceID: a.VoiceID},
		Metadata: map[string]string{"business_id": a.BusinessID.String()},
	}
	if s.cfg.ServerURL != "" {
		doc.ServerURL = strings.TrimRight(s.cfg.ServerURL, "/") + "/webhooks/vapi/" + a.BusinessID.String()
		doc.ServerURLSecret = s.cfg.WebhookSecret
	}
	return doc
}

func retryable(err error) bool {
	if errors.Is(err, vapi.ErrDisabled) {
		return false
	}
	var apiErr *vapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}
