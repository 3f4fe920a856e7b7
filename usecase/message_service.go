package usecase

import (
	"context"

	"github.com/satriahrh/paxos/domain"
)

type MessageService struct {
	store domain.MessageStore
}

func NewMessageService(store domain.MessageStore) *MessageService {
	return &MessageService{store: store}
}

// Submit stores message and returns its digest.
func (s *MessageService) Submit(ctx context.Context, message string) domain.DigestEntry {
	return domain.DigestEntry{
		Digest:  s.store.Put(ctx, message),
		Message: message,
	}
}

// Retrieve returns the message stored under digest, or domain.ErrDigestNotFound.
func (s *MessageService) Retrieve(ctx context.Context, digest string) (domain.DigestEntry, error) {
	message, ok := s.store.Get(ctx, digest)
	if !ok {
		return domain.DigestEntry{}, domain.ErrDigestNotFound
	}
	return domain.DigestEntry{Digest: digest, Message: message}, nil
}

// Count reports how many messages are currently stored.
func (s *MessageService) Count() int {
	return s.store.Len()
}
