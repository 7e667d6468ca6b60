// Mock implementations for testing signature flows without curve math.
package sign

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var _ Signer = (*MockSigner)(nil)
var _ AddressRecoverer = (*MockRecoverer)(nil)
var _ PublicKey = (*MockPublicKey)(nil)
var _ Address = MockAddress("")

const mockSigMarker = "-signed-by-"

// MockAddress is a plain string address for tests.
type MockAddress string

func (a MockAddress) String() string { return string(a) }

// Equals returns true if the other address has the same string form.
func (a MockAddress) Equals(other Address) bool { return a.String() == other.String() }

// MockPublicKey is a PublicKey whose bytes and address are both its ID.
type MockPublicKey struct {
	id string
}

// NewMockPublicKey creates a MockPublicKey with the given ID.
func NewMockPublicKey(id string) *MockPublicKey {
	return &MockPublicKey{id: id}
}

func (p *MockPublicKey) Address() Address { return MockAddress(p.id) }
func (p *MockPublicKey) Bytes() []byte    { return []byte(p.id) }

// MockSigner produces predictable signatures by appending a marker and the
// signer's ID to the digest bytes. MockRecoverer reverses the construction.
type MockSigner struct {
	publicKey *MockPublicKey
}

// NewMockSigner creates a MockSigner identified by id.
func NewMockSigner(id string) *MockSigner {
	return &MockSigner{publicKey: NewMockPublicKey(id)}
}

func (m *MockSigner) PublicKey() PublicKey { return m.publicKey }
func (m *MockSigner) Address() Address     { return m.publicKey.Address() }

// Sign generates the deterministic mock signature for the digest.
func (m *MockSigner) Sign(digest common.Hash) (Signature, error) {
	suffix := fmt.Sprintf("%s%s", mockSigMarker, m.publicKey.Address())
	return Signature(append(digest.Bytes(), suffix...)), nil
}

// MockRecoverer recovers addresses from MockSigner signatures. It checks
// that the signature's digest prefix matches the digest being verified, so
// tests exercise the same digest-binding property as real recovery.
type MockRecoverer struct{}

// NewMockRecoverer creates a MockRecoverer.
func NewMockRecoverer() *MockRecoverer {
	return &MockRecoverer{}
}

// RecoverAddress extracts the signer ID from a mock signature.
func (r *MockRecoverer) RecoverAddress(digest common.Hash, sig Signature) (Address, error) {
	rest, ok := bytes.CutPrefix(sig, digest.Bytes())
	if !ok {
		return nil, errors.Wrap(ErrRecoveryFailure, "signature does not match digest")
	}
	id, ok := bytes.CutPrefix(rest, []byte(mockSigMarker))
	if !ok {
		return nil, errors.Wrap(ErrInvalidSignature, "missing mock signature marker")
	}
	return MockAddress(id), nil
}
