package store

import (
	"context"
	"sync"

	"github.com/satriahrh/paxos/domain"
	"github.com/satriahrh/paxos/utils/log"
	"go.uber.org/zap"
)

// MemoryStore implements domain.MessageStore with a map guarded by a RWMutex.
// Contents live for the lifetime of the process.
type MemoryStore struct {
	hasher   domain.Hasher
	messages map[string]string
	mu       sync.RWMutex
}

// NewMemoryStore creates an empty store keyed by digests from hasher.
func NewMemoryStore(hasher domain.Hasher) *MemoryStore {
	return &MemoryStore{
		hasher:   hasher,
		messages: make(map[string]string),
	}
}

// Put stores message under its digest and returns the digest.
func (s *MemoryStore) Put(ctx context.Context, message string) string {
	digest := s.hasher.Hash([]byte(message))

	s.mu.Lock()
	_, existed := s.messages[digest]
	s.messages[digest] = message
	s.mu.Unlock()

	log.WithCtx(ctx).Debug("Message stored",
		zap.String("digest", digest),
		zap.Int("size", len(message)),
		zap.Bool("existed", existed))
	return digest
}

// Get returns the message stored under digest, if any.
func (s *MemoryStore) Get(ctx context.Context, digest string) (string, bool) {
	s.mu.RLock()
	message, ok := s.messages[digest]
	s.mu.RUnlock()

	if !ok {
		log.WithCtx(ctx).Debug("Digest lookup missed", zap.String("digest", digest))
	}
	return message, ok
}

// Len returns the number of stored messages.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
