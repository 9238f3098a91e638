/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/olahol/melody"
	"github.com/rs/zerolog"
)

// ProgressBroadcaster streams search progress snapshots (nodes expanded so
// far and current frontier size) to every websocket session subscribed to
// a task's channel, so a caller can watch node expansion happen live
// instead of waiting for the final Result. The search tree itself is not
// streamed.
type ProgressBroadcaster struct {
	melody *melody.Melody
	logger zerolog.Logger

	mu           sync.RWMutex
	subscribers  map[string]map[*melody.Session]bool
	writeTimeout time.Duration
}

func NewProgressBroadcaster(logger zerolog.Logger) *ProgressBroadcaster {
	m := melody.New()
	m.Config.ConcurrentMessageHandling = true

	pb := &ProgressBroadcaster{
		melody:       m,
		logger:       logger,
		subscribers:  make(map[string]map[*melody.Session]bool),
		writeTimeout: 30 * time.Second,
	}

	m.HandleConnect(func(s *melody.Session) {
		taskID, exists := s.Request.URL.Query()["taskId"]
		if !exists || len(taskID) == 0 {
			_ = s.Close()
			return
		}
		pb.subscribe(taskID[0], s)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		pb.unsubscribe(s)
	})

	return pb
}

func (pb *ProgressBroadcaster) subscribe(taskID string, s *melody.Session) {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if pb.subscribers[taskID] == nil {
		pb.subscribers[taskID] = make(map[*melody.Session]bool)
	}
	pb.subscribers[taskID][s] = true
	s.Set("taskID", taskID)
}

func (pb *ProgressBroadcaster) unsubscribe(s *melody.Session) {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	taskID, exists := s.Get("taskID")
	if !exists {
		return
	}
	delete(pb.subscribers[taskID.(string)], s)
}

// progressEvent is one incremental search progress update.
type progressEvent struct {
	TaskID        string `json:"task_id"`
	NodesExpanded int    `json:"nodes_expanded"`
	Frontier      int    `json:"frontier_size"`
}

// Publish pushes a snapshot to every session watching taskID. Called from
// search progress callbacks; silently a no-op when nobody is subscribed.
func (pb *ProgressBroadcaster) Publish(taskID string, nodesExpanded, frontier int) {
	pb.mu.RLock()
	sessions := pb.subscribers[taskID]
	pb.mu.RUnlock()

	if len(sessions) == 0 {
		return
	}

	data, err := json.Marshal(progressEvent{TaskID: taskID, NodesExpanded: nodesExpanded, Frontier: frontier})
	if err != nil {
		pb.logger.Error().Err(err).Msg("failed to marshal progress event")
		return
	}

	for s := range sessions {
		if err := s.Write(data); err != nil {
			pb.logger.Debug().Err(err).Msg("failed to write progress event to session")
		}
	}
}
