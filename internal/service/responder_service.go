package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"atendebot/internal/matcher"
	"atendebot/internal/models"
	"atendebot/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrCorpusUnavailable means the knowledge base could not be fetched or is
// empty. This is fatal to serving: an empty corpus is an operational fault,
// not "no match", and must never be papered over with the fallback answer.
var ErrCorpusUnavailable = errors.New("faq corpus unavailable")

const auditWriteTimeout = 5 * time.Second

// CorpusStore supplies the reference corpus in stable order.
type CorpusStore interface {
	FetchAll(ctx context.Context) ([]models.FAQEntry, error)
}

// AuditStore accepts interaction records, append-only.
type AuditStore interface {
	Insert(ctx context.Context, interaction *models.Interaction) error
}

// Responder owns the load-once/reuse-many lifecycle of the corpus index and
// orchestrates a request: normalize and match the question, record the
// interaction, return the answer.
//
// The index is published through an atomic pointer and is immutable once
// built, so concurrent matches never lock. The only guarded transition is
// the load itself: a singleflight group collapses concurrent first-request
// loads into one corpus fetch, with the losers waiting on the winner's
// result.
type Responder struct {
	corpus CorpusStore
	audit  AuditStore
	cfg    *config.MatcherConfig
	logger *zap.Logger

	index atomic.Pointer[matcher.Index]
	group singleflight.Group
}

func NewResponder(corpus CorpusStore, audit AuditStore, cfg *config.MatcherConfig, logger *zap.Logger) *Responder {
	return &Responder{
		corpus: corpus,
		audit:  audit,
		cfg:    cfg,
		logger: logger,
	}
}

// Respond answers a single question. The audit write is fire-and-forget: it
// runs on its own bounded context and its failure is logged, never returned.
func (s *Responder) Respond(ctx context.Context, rawText, userID string) (string, error) {
	index, err := s.ensureLoaded(ctx)
	if err != nil {
		return "", err
	}

	match := index.Match(rawText, s.cfg.Threshold)
	answer := match.Answer
	if match.Entry == nil {
		answer = s.cfg.FallbackMessage
	}

	s.recordInteraction(userID, rawText, answer, match.Score)

	return answer, nil
}

// Warm loads the corpus index eagerly. Callers that skip it still get a lazy
// load on the first request.
func (s *Responder) Warm(ctx context.Context) error {
	_, err := s.ensureLoaded(ctx)
	return err
}

// Reload discards the current index and rebuilds it from the corpus store.
// On failure the old index is cleared rather than silently served; the next
// request retries the load.
func (s *Responder) Reload(ctx context.Context) error {
	_, err, _ := s.group.Do("corpus", func() (interface{}, error) {
		s.index.Store(nil)
		return s.load(ctx)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Corpus index reloaded", zap.Int("entries", s.index.Load().Size()))
	return nil
}

func (s *Responder) ensureLoaded(ctx context.Context) (*matcher.Index, error) {
	if index := s.index.Load(); index != nil {
		return index, nil
	}

	v, err, _ := s.group.Do("corpus", func() (interface{}, error) {
		// A waiter may have queued behind a load that already published.
		if index := s.index.Load(); index != nil {
			return index, nil
		}
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}

	return v.(*matcher.Index), nil
}

func (s *Responder) load(ctx context.Context) (*matcher.Index, error) {
	loadCtx, cancel := context.WithTimeout(ctx, s.cfg.LoadTimeout)
	defer cancel()

	entries, err := s.corpus.FetchAll(loadCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: corpus store returned zero entries", ErrCorpusUnavailable)
	}

	index, err := matcher.BuildIndex(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}

	s.index.Store(index)
	s.logger.Info("Corpus index built", zap.Int("entries", index.Size()))
	return index, nil
}

// recordInteraction appends an audit row without blocking the response. The
// write gets a fresh context so a disconnecting caller cannot abort it
// mid-flight.
func (s *Responder) recordInteraction(userID, question, answer string, score float64) {
	if s.audit == nil {
		return
	}

	interaction := &models.Interaction{
		ID:         uuid.New(),
		UserID:     userID,
		Question:   question,
		Answer:     answer,
		Confidence: score,
		CreatedAt:  time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()

		if err := s.audit.Insert(ctx, interaction); err != nil {
			s.logger.Warn("Failed to record interaction",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}()
}
