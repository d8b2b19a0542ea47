package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Shard load states.
const (
	shardPending uint32 = iota
	shardLoaded
	shardMissing
	shardFailed
)

// Store holds the name dictionaries, keyed by role.
//
// Lookups are lock-free and may run concurrently with shard loading.
// Words are only ever added, so a word once visible stays visible.
type Store struct {
	source Source
	shards []ShardSpec
	logger *zap.Logger

	words  [roleCount]sync.Map
	counts [roleCount]atomic.Int64

	status []atomic.Uint32
	cursor atomic.Int64
	sf     singleflight.Group
}

// Stats describes the dictionary contents and shard progress.
type Stats struct {
	Shards      int   `json:"shards"`
	Loaded      int   `json:"loaded"`
	Missing     int   `json:"missing"`
	Failed      int   `json:"failed"`
	Pending     int   `json:"pending"`
	Surnames    int64 `json:"surnames"`
	GivenNames  int64 `json:"given_names"`
	Patronymics int64 `json:"patronymics"`
	Exhausted   bool  `json:"exhausted"`
}

// NewStore creates an empty store over the given shard layout.
// No shard is read until it is requested.
func NewStore(source Source, shards []ShardSpec, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		source: source,
		shards: shards,
		logger: logger,
		status: make([]atomic.Uint32, len(shards)),
	}
}

// Add inserts words under role. Empty words are ignored.
func (s *Store) Add(role Role, words ...string) {
	if !role.IsNamed() {
		return
	}
	for _, w := range words {
		w = normalizeWord(w)
		if w == "" {
			continue
		}
		if _, loaded := s.words[role].LoadOrStore(w, struct{}{}); !loaded {
			s.counts[role].Add(1)
		}
	}
}

// Contains reports whether the lower-cased word is present under role.
func (s *Store) Contains(word string, role Role) bool {
	if !role.IsNamed() || word == "" {
		return false
	}
	_, ok := s.words[role].Load(word)
	return ok
}

// ShardCount returns the total number of shards in the layout.
func (s *Store) ShardCount() int {
	return len(s.shards)
}

// IsExhausted reports whether the sequential loader has walked past every shard.
func (s *Store) IsExhausted() bool {
	return int(s.cursor.Load()) >= len(s.shards)
}

// EnsureShardLoaded loads the shard at index if it has not been attempted yet.
// Concurrent callers for the same shard share a single load.
// A shard whose resource does not exist is skipped and reported as success.
// A shard is attempted at most once, so later calls after a failure return nil.
func (s *Store) EnsureShardLoaded(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.shards) {
		return fmt.Errorf("shard index %d out of range [0,%d)", index, len(s.shards))
	}
	if s.status[index].Load() != shardPending {
		return nil
	}

	_, err, _ := s.sf.Do(strconv.Itoa(index), func() (any, error) {
		if s.status[index].Load() != shardPending {
			return nil, nil
		}
		state, err := s.loadShard(ctx, s.shards[index])
		s.status[index].Store(state)
		return nil, err
	})
	return err
}

// LoadNext advances the sequential loader by one shard.
// It returns true if the cursor moved, meaning new words may now be visible,
// and false once every shard has been attempted or when ctx ends before the
// next shard is attempted.
func (s *Store) LoadNext(ctx context.Context) bool {
	advanced := false
	for {
		i := s.cursor.Load()
		if int(i) >= len(s.shards) {
			return advanced
		}

		if s.status[i].Load() == shardPending {
			if err := s.EnsureShardLoaded(ctx, int(i)); err != nil {
				s.logger.Warn("Dictionary shard failed to load",
					zap.String("shard", s.shards[i].Name),
					zap.Error(err),
				)
			}
			if s.status[i].Load() == shardPending {
				// Interrupted; the shard stays next in line.
				return advanced
			}
			s.cursor.CompareAndSwap(i, i+1)
			return true
		}

		// Already attempted through EnsureShardLoaded; skip over it.
		s.cursor.CompareAndSwap(i, i+1)
		advanced = true
	}
}

// Preload attempts every shard and marks the loader exhausted. Shards left
// pending by a canceled ctx stay in line for LoadNext.
// It returns the joined errors of shards that failed to load.
func (s *Store) Preload(ctx context.Context) error {
	var errs []error
	for i := range s.shards {
		if err := s.EnsureShardLoaded(ctx, i); err != nil {
			errs = append(errs, err)
		}
	}
	next := len(s.shards)
	for i := range s.shards {
		if s.status[i].Load() == shardPending {
			next = i
			break
		}
	}
	s.cursor.Store(int64(next))
	return errors.Join(errs...)
}

// Stats returns a snapshot of the dictionary state.
func (s *Store) Stats() Stats {
	st := Stats{
		Shards:      len(s.shards),
		Surnames:    s.counts[RoleSurname].Load(),
		GivenNames:  s.counts[RoleGiven].Load(),
		Patronymics: s.counts[RolePatronymic].Load(),
		Exhausted:   s.IsExhausted(),
	}
	for i := range s.status {
		switch s.status[i].Load() {
		case shardLoaded:
			st.Loaded++
		case shardMissing:
			st.Missing++
		case shardFailed:
			st.Failed++
		default:
			st.Pending++
		}
	}
	return st
}

func (s *Store) loadShard(ctx context.Context, spec ShardSpec) (uint32, error) {
	if err := ctx.Err(); err != nil {
		// Leave the shard pending so a later caller can retry it.
		return shardPending, err
	}

	rc, err := s.source.Open(ctx, spec.Name)
	if err != nil {
		if errors.Is(err, ErrShardNotFound) {
			s.logger.Debug("Dictionary shard not found, skipping", zap.String("shard", spec.Name))
			return shardMissing, nil
		}
		return shardFailed, fmt.Errorf("failed to open shard %s: %w", spec.Name, err)
	}
	defer rc.Close()

	stats, err := ParseShard(rc, spec.Role, func(role Role, word string) {
		s.Add(role, word)
	})
	if err != nil {
		return shardFailed, fmt.Errorf("failed to parse shard %s: %w", spec.Name, err)
	}

	s.logger.Info("Dictionary shard loaded",
		zap.String("shard", spec.Name),
		zap.String("role", spec.Role.String()),
		zap.Int("lines", stats.Lines),
		zap.Int("words", stats.Words),
		zap.Int("skipped", stats.Skipped),
	)
	return shardLoaded, nil
}
