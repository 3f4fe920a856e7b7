package hasher

import (
	godigest "github.com/opencontainers/go-digest"
	"github.com/satriahrh/paxos/domain"
)

// New returns a domain.Hasher backed by SHA‑256. Digests are the bare
// lowercase hex encoding, without the "sha256:" algorithm prefix.
func New() domain.Hasher { return sha256Hasher{} }

type sha256Hasher struct{}

func (h sha256Hasher) Hash(data []byte) string {
	return godigest.SHA256.FromBytes(data).Encoded()
}
