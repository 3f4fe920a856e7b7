package domain

// Hasher computes the content digest used as a message key.
// Implementations must be deterministic: equal input yields an equal digest.
type Hasher interface {
	Hash(data []byte) string
}
