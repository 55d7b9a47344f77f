// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-share-inbox/internal/utils"
	"github.com/MKhiriev/go-share-inbox/internal/validators"
	"github.com/MKhiriev/go-share-inbox/models"
)

// sharingStore keeps the emulated sharing requests in insertion order.
type sharingStore struct {
	mu       sync.Mutex
	requests []models.SharingRequest
	rejects  map[string]struct{}
	ids      *utils.UUIDGenerator
}

func newSharingStore(seeds []models.SharingRequest, rejectIDs []string) *sharingStore {
	s := &sharingStore{
		rejects: make(map[string]struct{}, len(rejectIDs)),
		ids:     utils.NewUUIDGenerator(),
	}
	for _, id := range rejectIDs {
		if id = strings.TrimSpace(id); id != "" {
			s.rejects[id] = struct{}{}
		}
	}

	now := time.Now().Unix()
	for _, r := range seeds {
		if r.RequestID == "" {
			r.RequestID = s.ids.Generate()
		}
		if r.Status == "" {
			r.Status = models.SharingStatusPending
		}
		if r.Timestamp == 0 {
			r.Timestamp = now
		}
		s.requests = append(s.requests, r)
	}
	return s
}

// page returns up to limit requests starting at startID and the id the
// next page starts at.
func (s *sharingStore) page(startID string, limit int) ([]models.SharingRequest, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := 0
	if startID != "" {
		start = s.indexLocked(startID)
		if start < 0 {
			return nil, "", fmt.Errorf("%w: %s", ErrUnknownStartRequestID, startID)
		}
	}

	end := start + limit
	if end > len(s.requests) {
		end = len(s.requests)
	}

	out := append([]models.SharingRequest(nil), s.requests[start:end]...)

	var next string
	if end < len(s.requests) {
		next = s.requests[end].RequestID
	}
	return out, next, nil
}

func (s *sharingStore) answer(requestID string, accept bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(requestID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSharingRequestNotFound, requestID)
	}
	if _, rejected := s.rejects[requestID]; rejected {
		return fmt.Errorf("%w: %s", ErrRejectedByPolicy, requestID)
	}
	if !s.requests[i].IsPending() {
		return fmt.Errorf("%w: %s", ErrAlreadyAnswered, requestID)
	}

	if accept {
		s.requests[i].Status = models.SharingStatusAccepted
	} else {
		s.requests[i].Status = models.SharingStatusDeclined
	}
	return nil
}

func (s *sharingStore) indexLocked(requestID string) int {
	for i, r := range s.requests {
		if r.RequestID == requestID {
			return i
		}
	}
	return -1
}

// LoadSeeds reads a JSON array of sharing requests. An empty path yields
// the built-in samples.
func LoadSeeds(path string) ([]models.SharingRequest, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeeds(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []models.SharingRequest
	if err = json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if err = validators.NewSharingRequestValidator().Validate(context.Background(), seeds); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return seeds, nil
}

// DefaultSeeds covers the sentence variants: several devices, one device,
// no metadata and malformed metadata.
func DefaultSeeds() []models.SharingRequest {
	return []models.SharingRequest{
		{
			PrimaryUserName: "alice@example.com",
			NodeIDs:         []string{"node-lamp", "node-fan", "node-plug"},
			Metadata:        `{"devices":[{"name":"Lamp"},{"name":"Fan"},{"name":"Plug"}]}`,
		},
		{
			PrimaryUserName: "bob@example.com",
			NodeIDs:         []string{"node-heater"},
			Metadata:        `{"devices":[{"name":"Heater"}]}`,
		},
		{
			PrimaryUserName: "carol@example.com",
			NodeIDs:         []string{"node-a1", "node-b2"},
		},
		{
			PrimaryUserName: "dave@example.com",
			NodeIDs:         []string{"node-c3"},
			Metadata:        `{"devices":[{"name":"Kettle"},{"label":"broken"}]}`,
		},
	}
}
