package icebreakers

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"icebreaker-backend/internal/profile"
)

// Contract violations. These are the only errors the selection engine raises;
// data variability (missing fields, exhausted catalog) degrades instead.
var (
	ErrInvalidCount    = errors.New("count must be positive")
	ErrInvalidCriteria = errors.New("exactly one of category, subcategory or tags must be set")
)

// Scored pairs a starter with the score it got in this call.
type Scored struct {
	Starter Starter
	Score   float64
}

// Criteria narrows a targeted selection. Exactly one field must be set.
type Criteria struct {
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (c Criteria) validate() error {
	set := 0
	if strings.TrimSpace(c.Category) != "" {
		set++
	}
	if strings.TrimSpace(c.Subcategory) != "" {
		set++
	}
	if len(c.Tags) > 0 {
		set++
	}
	if set != 1 {
		return ErrInvalidCriteria
	}
	return nil
}

// Selector picks starters for a session: balanced across categories in
// diverse mode, filtered by one criterion in targeted mode. Recording the
// chosen ids into the session is its only side effect and happens inside the
// session's critical section.
type Selector struct {
	bank     *Bank
	scorer   *Scorer
	sessions *SessionTracker

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector wires a selector with time-seeded backfill randomness.
func NewSelector(bank *Bank, scorer *Scorer, sessions *SessionTracker) *Selector {
	return NewSelectorWithRand(bank, scorer, sessions, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSelectorWithRand injects the backfill random source for tests.
func NewSelectorWithRand(bank *Bank, scorer *Scorer, sessions *SessionTracker, rng *rand.Rand) *Selector {
	return &Selector{bank: bank, scorer: scorer, sessions: sessions, rng: rng}
}

// SelectDiverse returns up to count starters spread across the fixed
// categories, skipping anything the session has already seen and backfilling
// with random unused entries when categories run short. The result is shorter
// than count only when the catalog itself is exhausted for this session.
func (s *Selector) SelectDiverse(ctx profile.Context, sessionID string, count int) ([]Scored, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	var picked []Scored
	s.sessions.WithSession(sessionID, func(used map[int]struct{}) []int {
		targets := categoryTargets(count)
		seen := make(map[int]struct{}, count)

		for i, category := range Categories {
			pool := s.available(s.bank.ByCategory(category), used, seen)
			ranked := s.rank(pool, ctx)
			for _, candidate := range ranked[:min(targets[i], len(ranked))] {
				picked = append(picked, candidate)
				seen[candidate.Starter.ID] = struct{}{}
			}
		}

		picked = append(picked, s.backfill(ctx, used, seen, count-len(picked))...)
		return ids(picked)
	})
	return picked, nil
}

// SelectTargeted follows the same score, sort, dedupe and record pipeline
// over a filtered pool, without category balancing.
func (s *Selector) SelectTargeted(criteria Criteria, ctx profile.Context, sessionID string, count int) ([]Scored, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if err := criteria.validate(); err != nil {
		return nil, err
	}

	var pool []Starter
	switch {
	case strings.TrimSpace(criteria.Category) != "":
		pool = s.bank.ByCategory(strings.TrimSpace(criteria.Category))
	case strings.TrimSpace(criteria.Subcategory) != "":
		pool = s.bank.BySubcategory(strings.TrimSpace(criteria.Subcategory))
	default:
		pool = s.bank.ByTags(criteria.Tags)
	}

	var picked []Scored
	s.sessions.WithSession(sessionID, func(used map[int]struct{}) []int {
		ranked := s.rank(s.available(pool, used, nil), ctx)
		picked = ranked[:min(count, len(ranked))]
		return ids(picked)
	})
	return picked, nil
}

// categoryTargets splits count evenly across the fixed categories, handing
// any remainder to the earliest ones.
func categoryTargets(count int) []int {
	targets := make([]int, len(Categories))
	base := count / len(Categories)
	remainder := count % len(Categories)
	for i := range targets {
		targets[i] = base
		if i < remainder {
			targets[i]++
		}
	}
	return targets
}

func (s *Selector) available(pool []Starter, used, seen map[int]struct{}) []Starter {
	return lo.Filter(pool, func(starter Starter, _ int) bool {
		if _, ok := used[starter.ID]; ok {
			return false
		}
		if seen != nil {
			if _, ok := seen[starter.ID]; ok {
				return false
			}
		}
		return true
	})
}

func (s *Selector) rank(pool []Starter, ctx profile.Context) []Scored {
	scored := lo.Map(pool, func(starter Starter, _ int) Scored {
		return Scored{Starter: starter, Score: s.scorer.Score(starter, ctx)}
	})
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// backfill draws uniformly random unused entries from the whole catalog until
// the shortfall is covered or the catalog is exhausted.
func (s *Selector) backfill(ctx profile.Context, used, seen map[int]struct{}, shortfall int) []Scored {
	if shortfall <= 0 {
		return nil
	}
	remaining := s.available(s.bank.All(), used, seen)
	s.shuffle(remaining)
	if len(remaining) > shortfall {
		remaining = remaining[:shortfall]
	}
	return lo.Map(remaining, func(starter Starter, _ int) Scored {
		return Scored{Starter: starter, Score: s.scorer.Score(starter, ctx)}
	})
}

func (s *Selector) shuffle(pool []Starter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

func ids(picked []Scored) []int {
	return lo.Map(picked, func(item Scored, _ int) int {
		return item.Starter.ID
	})
}
