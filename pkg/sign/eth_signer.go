package sign

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Ensure our types implement the interfaces at compile time.
var _ Signer = (*EthereumSigner)(nil)
var _ PublicKey = (*EthereumPublicKey)(nil)
var _ Address = (*EthereumAddress)(nil)

// EthereumAddress implements the Address interface for Ethereum. The
// canonical internal representation is the raw 20-byte value; the checksum
// hex form exists only at the String boundary.
type EthereumAddress struct{ common.Address }

func (a EthereumAddress) String() string { return a.Address.Hex() }

// NewEthereumAddress creates a new Ethereum address from a common.Address.
func NewEthereumAddress(addr common.Address) EthereumAddress {
	return EthereumAddress{addr}
}

// NewEthereumAddressFromHex creates a new Ethereum address from a hex string.
func NewEthereumAddressFromHex(hexAddr string) EthereumAddress {
	return EthereumAddress{common.HexToAddress(hexAddr)}
}

// Equals returns true if this address equals the other address. Comparison
// is byte-exact for Ethereum addresses and falls back to the string form for
// foreign Address implementations.
func (a EthereumAddress) Equals(other Address) bool {
	if otherAddr, ok := other.(EthereumAddress); ok {
		return a.Address == otherAddr.Address
	}
	return a.String() == other.String()
}

// EthereumPublicKey implements the PublicKey interface for Ethereum.
type EthereumPublicKey struct{ *ecdsa.PublicKey }

// Address derives the Ethereum address: the last 20 bytes of
// keccak256(uncompressed public key without the 0x04 prefix).
func (p EthereumPublicKey) Address() Address {
	return EthereumAddress{ethcrypto.PubkeyToAddress(*p.PublicKey)}
}

func (p EthereumPublicKey) Bytes() []byte { return ethcrypto.FromECDSAPub(p.PublicKey) }

// NewEthereumPublicKey creates a new Ethereum public key from an ECDSA public key.
func NewEthereumPublicKey(pub *ecdsa.PublicKey) EthereumPublicKey {
	return EthereumPublicKey{pub}
}

// NewEthereumPublicKeyFromBytes creates a new Ethereum public key from raw bytes.
func NewEthereumPublicKeyFromBytes(pubBytes []byte) (EthereumPublicKey, error) {
	pub, err := ethcrypto.UnmarshalPubkey(pubBytes)
	if err != nil {
		return EthereumPublicKey{}, errors.WithMessage(err, "failed to unmarshal public key")
	}
	return EthereumPublicKey{pub}, nil
}

// EthereumSigner signs digests with a local secp256k1 private key.
type EthereumSigner struct {
	privateKey *ecdsa.PrivateKey
	publicKey  EthereumPublicKey
}

func (s *EthereumSigner) PublicKey() PublicKey { return s.publicKey }

// Address returns the address derived from the signer's public key.
func (s *EthereumSigner) Address() Address { return s.publicKey.Address() }

// Sign signs the digest and returns a compact signature with v encoded as
// 27/28, the convention expected by the ecrecover precompile.
func (s *EthereumSigner) Sign(digest common.Hash) (Signature, error) {
	sig, err := ethcrypto.Sign(digest.Bytes(), s.privateKey)
	if err != nil {
		return nil, err
	}
	if sig[64] < 27 {
		sig[64] += 27
	}
	return Signature(sig), nil
}

// NewEthereumSigner creates a signer from a hex-encoded private key, with or
// without the 0x prefix.
func NewEthereumSigner(privateKeyHex string) (*EthereumSigner, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")
	key, err := ethcrypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, errors.WithMessage(err, "could not parse ethereum private key")
	}
	return NewEthereumSignerFromKey(key), nil
}

// NewEthereumSignerFromKey creates a signer from an existing ECDSA key.
func NewEthereumSignerFromKey(key *ecdsa.PrivateKey) *EthereumSigner {
	return &EthereumSigner{
		privateKey: key,
		publicKey:  EthereumPublicKey{key.Public().(*ecdsa.PublicKey)},
	}
}
