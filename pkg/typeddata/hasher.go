package typeddata

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Hasher is the 256-bit hash capability this package builds digests with.
// It is consumed, never implemented here: production code hands in keccak256,
// tests may hand in a deterministic fake.
type Hasher interface {
	// Sum hashes the concatenation of chunks into a 32-byte digest.
	Sum(chunks ...[]byte) common.Hash
}

var _ Hasher = KeccakHasher{}

// KeccakHasher is the production Hasher, backed by go-ethereum's keccak256.
// It is stateless and safe for concurrent use.
type KeccakHasher struct{}

// Sum implements Hasher using legacy (non-NIST) keccak256.
func (KeccakHasher) Sum(chunks ...[]byte) common.Hash {
	return crypto.Keccak256Hash(chunks...)
}
