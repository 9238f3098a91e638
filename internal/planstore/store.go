/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

// Package planstore caches search.Result values keyed by the grounded
// task and the (algorithm, heuristic) pair that produced them, so a
// repeated plan request never reruns a search it already has the answer
// to. Benchmark runs do not go through this cache.
package planstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/stripslab/planner/internal/model"
	"github.com/stripslab/planner/internal/search"
)

var ErrNotFound = errors.New("plan result not found in cache")

// Store is a Badger-backed cache of search results.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens (creating if needed) a Badger database at path.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.SyncWrites = true
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan store: %w", err)
	}

	logger.Info().Msgf("Started plan store at: %s", path)

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Key deterministically identifies a cached search run: the grounded
// task's content (actions, initial state, goal) plus the algorithm and
// heuristic chosen to search it. Identical tasks hash identically
// regardless of grounding order variance introduced upstream, since task
// action/atom lists are sorted before hashing.
func Key(task *model.Task, algorithm search.Algorithm, h search.HeuristicName) string {
	f := fnv.New64a()

	actionKeys := make([]string, len(task.Actions))
	for i, a := range task.Actions {
		actionKeys[i] = a.Key()
	}
	sort.Strings(actionKeys)

	for _, k := range actionKeys {
		_, _ = f.Write([]byte(k))
		_, _ = f.Write([]byte{0})
	}
	_, _ = f.Write([]byte(task.Initial.Key()))
	for _, g := range task.Goal.Slice() {
		_, _ = f.Write([]byte(g))
		_, _ = f.Write([]byte{0})
	}

	return fmt.Sprintf("planresult:%s:%s:%x", algorithm, h, f.Sum64())
}

// Put stores result under key, retrying transient Badger write conflicts
// with exponential backoff. Badger's optimistic concurrency can return
// ErrConflict or ErrTxnTooBig under concurrent plan requests; both
// are safe to retry since the write is idempotent (same key, same bytes).
func (s *Store) Put(key string, result search.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal plan result: %w", err)
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 10 * time.Millisecond
	expBackoff.MaxInterval = 200 * time.Millisecond
	expBackoff.MaxElapsedTime = 2 * time.Second

	operation := func() error {
		err := s.db.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte(key), data)
		})
		if errors.Is(err, badger.ErrConflict) || errors.Is(err, badger.ErrTxnTooBig) {
			return err // retryable
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	return backoff.Retry(operation, expBackoff)
}

// Get looks up a previously cached result. Returns ErrNotFound if absent.
func (s *Store) Get(key string) (search.Result, error) {
	var result search.Result

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &result)
		})
	})
	if err != nil {
		return search.Result{}, err
	}
	return result, nil
}
