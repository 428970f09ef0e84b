package icebreakers

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"icebreaker-backend/internal/llm"
	"icebreaker-backend/internal/profile"
	"icebreaker-backend/internal/shared/metrics"
	"icebreaker-backend/internal/shared/telemetry"
)

const personalizeWorkers = 4

// Service is the caller-facing engine: analyze a profile, pick a diverse or
// targeted set of starters for a session, personalize them, and clear
// sessions. The AI path is a best-effort enhancement layered over the
// rule-based personalizer.
type Service struct {
	Bank         *Bank
	Selector     *Selector
	Sessions     *SessionTracker
	Personalizer *Personalizer
	AI           *AICustomizer
}

// NewService wires the engine. llmClient may be nil, which disables the AI
// path entirely.
func NewService(bank *Bank, llmClient llm.Client, aiTimeout time.Duration) *Service {
	sessions := NewSessionTracker()
	scorer := NewScorer()
	svc := &Service{
		Bank:         bank,
		Selector:     NewSelector(bank, scorer, sessions),
		Sessions:     sessions,
		Personalizer: NewPersonalizer(),
	}
	if llmClient != nil {
		svc.AI = NewAICustomizer(llm.WithRetry(llmClient), aiTimeout)
	}
	return svc
}

// AnalyzeProfile derives the structured context for a raw profile.
func (s *Service) AnalyzeProfile(p profile.RawProfile) profile.Context {
	metrics.ProfileAnalysesTotal.Inc()
	return profile.Analyze(p)
}

// SelectDiverse picks up to count category-balanced starters for the session
// and personalizes them. Order follows category distribution then backfill.
func (s *Service) SelectDiverse(ctx context.Context, pctx profile.Context, sessionID string, count int) ([]PersonalizedQuestion, error) {
	started := time.Now()
	defer func() { metrics.SelectionDuration.Observe(time.Since(started).Seconds()) }()
	metrics.SelectionsTotal.WithLabelValues("diverse").Inc()

	picks, err := s.Selector.SelectDiverse(pctx, sessionID, count)
	if err != nil {
		return nil, err
	}
	return s.personalizeBatch(ctx, pctx, picks), nil
}

// SelectTargeted picks up to count starters matching one criterion and
// personalizes them.
func (s *Service) SelectTargeted(ctx context.Context, criteria Criteria, pctx profile.Context, sessionID string, count int) ([]PersonalizedQuestion, error) {
	started := time.Now()
	defer func() { metrics.SelectionDuration.Observe(time.Since(started).Seconds()) }()
	metrics.SelectionsTotal.WithLabelValues("targeted").Inc()

	picks, err := s.Selector.SelectTargeted(criteria, pctx, sessionID, count)
	if err != nil {
		return nil, err
	}
	return s.personalizeBatch(ctx, pctx, picks), nil
}

// ClearSession forgets the used-question history for a session.
func (s *Service) ClearSession(sessionID string) {
	s.Sessions.Clear(sessionID)
}

// Summary renders the narrative summary for a context.
func (s *Service) Summary(pctx profile.Context) string {
	return profile.Summary(pctx)
}

// personalizeBatch tries the AI path first when configured and falls back to
// rule-based personalization for the whole batch on any failure. Fallback is
// logged, never surfaced.
func (s *Service) personalizeBatch(ctx context.Context, pctx profile.Context, picks []Scored) []PersonalizedQuestion {
	if len(picks) == 0 {
		return []PersonalizedQuestion{}
	}

	if s.AI != nil {
		customized, err := s.AI.Customize(ctx, pctx, picks)
		if err == nil {
			metrics.QuestionsServedTotal.Add(float64(len(customized)))
			return customized
		}
		reason := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		metrics.AIFallbacksTotal.WithLabelValues(reason).Inc()
		telemetry.Warn("icebreakers.ai_fallback", map[string]any{
			"reason": reason,
			"error":  err.Error(),
			"batch":  len(picks),
		})
	}

	out := make([]PersonalizedQuestion, len(picks))
	g := new(errgroup.Group)
	g.SetLimit(personalizeWorkers)
	for i, pick := range picks {
		i, pick := i, pick
		g.Go(func() error {
			out[i] = s.Personalizer.Personalize(pick, pctx)
			return nil
		})
	}
	_ = g.Wait()

	metrics.QuestionsServedTotal.Add(float64(len(out)))
	return out
}
