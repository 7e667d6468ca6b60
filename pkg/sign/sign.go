package sign

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// SignatureLength is the byte length of a compact signature: r (32) ‖ s (32) ‖ v (1).
const SignatureLength = 65

// Signer produces signatures over 32-byte signing digests. Implementations
// never expose private key material.
type Signer interface {
	// PublicKey returns the public key associated with this signer.
	PublicKey() PublicKey
	// Address returns the address derived from the signer's public key.
	Address() Address
	// Sign signs the given digest. The digest is signed as-is; hashing the
	// message down to 32 bytes is the digest builder's job.
	Sign(digest common.Hash) (Signature, error)
}

// AddressRecoverer recovers the signer's address from a digest and a
// signature, failing rather than returning a wrong signer.
type AddressRecoverer interface {
	RecoverAddress(digest common.Hash, sig Signature) (Address, error)
}

// PublicKey is a public key with address derivation.
type PublicKey interface {
	Address() Address
	Bytes() []byte
}

// Address is a blockchain address.
type Address interface {
	fmt.Stringer

	// Equals returns true if this address equals the other address.
	Equals(other Address) bool
}

// Signature is a compact 65-byte signature r ‖ s ‖ v.
type Signature []byte

// FromRSV assembles a compact signature from its components.
func FromRSV(r, s [32]byte, v byte) Signature {
	sig := make(Signature, SignatureLength)
	copy(sig[:32], r[:])
	copy(sig[32:64], s[:])
	sig[64] = v
	return sig
}

// R returns the r component. Zero for malformed signatures.
func (s Signature) R() [32]byte {
	var r [32]byte
	if len(s) == SignatureLength {
		copy(r[:], s[:32])
	}
	return r
}

// S returns the s component. Zero for malformed signatures.
func (s Signature) S() [32]byte {
	var sv [32]byte
	if len(s) == SignatureLength {
		copy(sv[:], s[32:64])
	}
	return sv
}

// V returns the recovery id byte. Zero for malformed signatures.
func (s Signature) V() byte {
	if len(s) != SignatureLength {
		return 0
	}
	return s[64]
}

// MarshalJSON implements the json.Marshaler interface, encoding the signature as a hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := hexutil.Decode(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// String implements the fmt.Stringer interface.
func (s Signature) String() string {
	return hexutil.Encode(s)
}
