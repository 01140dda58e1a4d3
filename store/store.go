package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"taskmaster-api/domain"
	"taskmaster-api/storage"
)

var (
	taskOpsCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskmaster_task_ops_total",
			Help: "Total number of task store mutations by operation and status",
		},
		[]string{"op", "status"},
	)

	persistDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "taskmaster_persist_duration_seconds",
			Help:    "Duration of full-collection persistence per mutation",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Store owns the canonical task collection and keeps it durable. It is the
// single writer; consumers only ever see copies. Every mutation rewrites the
// whole collection to the backend before returning, so the persisted state
// and the in-memory state agree after each call.
type Store struct {
	backend storage.Backend
	logger  *log.Logger

	mu      sync.Mutex
	tasks   []domain.Task
	loading bool
}

// New returns a Store in the loading state. Call Load before reading.
func New(backend storage.Backend, logger *log.Logger) *Store {
	if backend == nil {
		panic("store.New: backend is nil")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Store{backend: backend, logger: logger, loading: true}
}

// Load initializes the collection from the backend. A missing entry seeds
// the collection with sample tasks and persists them immediately. A corrupt
// entry is logged and leaves the collection empty for the session; the error
// never propagates.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	tasks, err := s.backend.LoadTasks(ctx)
	switch {
	case err == nil:
		s.tasks = tasks
		s.logger.WithField("tasks", len(tasks)).Debug("task collection loaded")
	case errors.Is(err, storage.ErrNotFound):
		s.tasks = SeedTasks(time.Now())
		if saveErr := s.backend.SaveTasks(ctx, s.tasks); saveErr != nil {
			s.logger.WithError(saveErr).Error("persist seed tasks")
		}
		s.logger.WithField("tasks", len(s.tasks)).Info("seeded task collection")
	default:
		s.logger.WithError(err).Error("load tasks failed; starting with an empty collection")
		s.tasks = nil
	}
}

// Loading reports whether the initial load has not yet resolved. Reads are
// invalid until it returns false.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Tasks returns a read-only snapshot of the collection.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// NewTask builds a fully-formed task ready for Add, assigning a unique id
// and the creation timestamp.
func NewTask(title, description string, category domain.Category, priority domain.Priority, due time.Time) domain.Task {
	return domain.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		DueDate:     due,
		Completed:   false,
		CreatedAt:   time.Now(),
	}
}

// Add appends a fully-formed task to the collection. Invalid tasks and
// duplicate ids are rejected.
func (s *Store) Add(ctx context.Context, task domain.Task) error {
	if err := task.Validate(); err != nil {
		taskOpsCount.WithLabelValues("add", "error").Inc()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			taskOpsCount.WithLabelValues("add", "error").Inc()
			return fmt.Errorf("task %s already exists", task.ID)
		}
	}

	s.tasks = append(s.tasks, task)
	if err := s.persist(ctx); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		taskOpsCount.WithLabelValues("add", "error").Inc()
		return err
	}
	taskOpsCount.WithLabelValues("add", "success").Inc()
	return nil
}

// Update replaces the task whose id matches. An unknown id is a silent
// no-op; nothing is persisted and no error is reported.
func (s *Store) Update(ctx context.Context, task domain.Task) error {
	if err := task.Validate(); err != nil {
		taskOpsCount.WithLabelValues("update", "error").Inc()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != task.ID {
			continue
		}
		prev := s.tasks[i]
		s.tasks[i] = task
		if err := s.persist(ctx); err != nil {
			s.tasks[i] = prev
			taskOpsCount.WithLabelValues("update", "error").Inc()
			return err
		}
		taskOpsCount.WithLabelValues("update", "success").Inc()
		return nil
	}

	taskOpsCount.WithLabelValues("update", "noop").Inc()
	return nil
}

// Delete removes the task with the matching id. An unknown id is a silent
// no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		removed := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		if err := s.persist(ctx); err != nil {
			s.tasks = append(s.tasks[:i], append([]domain.Task{removed}, s.tasks[i:]...)...)
			taskOpsCount.WithLabelValues("delete", "error").Inc()
			return err
		}
		taskOpsCount.WithLabelValues("delete", "success").Inc()
		return nil
	}

	taskOpsCount.WithLabelValues("delete", "noop").Inc()
	return nil
}

// persist rewrites the full collection. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	start := time.Now()
	err := s.backend.SaveTasks(ctx, s.tasks)
	persistDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.WithError(err).Error("persist task collection")
	}
	return err
}
