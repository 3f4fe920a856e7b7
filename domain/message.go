package domain

import (
	"context"
	"errors"
)

// ErrDigestNotFound is returned when no stored message matches a digest.
var ErrDigestNotFound = errors.New("no message corresponds to this digest")

// DigestEntry pairs a message with the digest derived from its bytes.
type DigestEntry struct {
	Digest  string `json:"digest"`
	Message string `json:"message"`
}

// MessageStore is the port for the digest -> message mapping.
type MessageStore interface {
	// Put derives the digest of message, stores the pair and returns the digest.
	// Storing the same message twice is a no-op overwrite.
	Put(ctx context.Context, message string) string

	// Get looks up digest. A miss is reported through the boolean, not an error.
	Get(ctx context.Context, digest string) (string, bool)

	// Len returns the number of stored entries.
	Len() int
}
