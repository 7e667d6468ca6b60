package sign

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidSignature is returned for signatures that can never be the
	// product of honest signing: wrong length, r or s of zero or at/above
	// the curve order, or an unrecognized recovery id.
	ErrInvalidSignature = errors.New("sign: invalid signature")

	// ErrNonCanonicalSignature is returned when s lies in the upper half of
	// the curve order. Such a signature recovers to the same point as its
	// low-s twin (r, n−s, 1−v), so accepting both forms would let anyone
	// mint a second valid signature for an already-signed digest. It
	// matches errors.Is against ErrInvalidSignature as well.
	ErrNonCanonicalSignature = errors.Wrap(ErrInvalidSignature, "s in upper half of curve order")

	// ErrRecoveryFailure is returned when v does not select a valid curve
	// point for the given digest, r and s.
	ErrRecoveryFailure = errors.New("sign: public key recovery failed")
)

// secp256k1 group order and half order, for r/s range and low-s checks.
var (
	curveOrder = secp256k1.S256().N
	halfOrder  = new(big.Int).Rsh(new(big.Int).Set(secp256k1.S256().N), 1)
)

var _ AddressRecoverer = (*EthereumAddressRecoverer)(nil)

// EthereumAddressRecoverer recovers Ethereum addresses from compact
// signatures over 32-byte digests. By default it accepts only canonical
// low-s signatures; see WithAllowHighS. Immutable and safe for concurrent
// use.
type EthereumAddressRecoverer struct {
	allowHighS bool
}

// RecovererOption configures an EthereumAddressRecoverer.
type RecovererOption func(*EthereumAddressRecoverer)

// WithAllowHighS accepts non-canonical high-s signatures for compatibility
// with legacy external signers. The secure default is to reject them.
func WithAllowHighS() RecovererOption {
	return func(r *EthereumAddressRecoverer) { r.allowHighS = true }
}

// NewEthereumAddressRecoverer creates a recoverer with the canonical low-s
// policy unless opted out.
func NewEthereumAddressRecoverer(opts ...RecovererOption) *EthereumAddressRecoverer {
	r := &EthereumAddressRecoverer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RecoverAddress validates the signature and recovers the signer's address.
//
// The canonical v encoding is 27/28; the raw recovery id form 0/1 is also
// accepted and normalized. EIP-155 chain-encoded v values belong to
// transaction signing and are rejected here.
//
// A returned address is not authorization by itself: the caller compares it
// against the expected signer.
func (r *EthereumAddressRecoverer) RecoverAddress(digest common.Hash, sig Signature) (Address, error) {
	if len(sig) != SignatureLength {
		return nil, errors.Wrapf(ErrInvalidSignature, "length %d, want %d", len(sig), SignatureLength)
	}

	rVal := new(big.Int).SetBytes(sig[:32])
	sVal := new(big.Int).SetBytes(sig[32:64])
	if rVal.Sign() == 0 || rVal.Cmp(curveOrder) >= 0 {
		return nil, errors.Wrap(ErrInvalidSignature, "r out of range [1, n-1]")
	}
	if sVal.Sign() == 0 || sVal.Cmp(curveOrder) >= 0 {
		return nil, errors.Wrap(ErrInvalidSignature, "s out of range [1, n-1]")
	}
	if !r.allowHighS && sVal.Cmp(halfOrder) > 0 {
		return nil, ErrNonCanonicalSignature
	}

	var recID byte
	switch v := sig[64]; v {
	case 0, 1:
		recID = v
	case 27, 28:
		recID = v - 27
	default:
		return nil, errors.Wrapf(ErrInvalidSignature, "v %d is not 27/28 or 0/1", v)
	}

	// Copy before normalizing v so the caller's signature is untouched.
	local := make([]byte, SignatureLength)
	copy(local, sig)
	local[64] = recID

	pub, err := ethcrypto.SigToPub(digest.Bytes(), local)
	if err != nil {
		return nil, errors.Wrap(ErrRecoveryFailure, err.Error())
	}
	return EthereumAddress{ethcrypto.PubkeyToAddress(*pub)}, nil
}
