package sign_test

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statelayer/sigil/pkg/sign"
)

func signedDigest(t *testing.T) (*sign.EthereumSigner, common.Hash, sign.Signature) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := sign.NewEthereumSignerFromKey(key)

	digest := crypto.Keccak256Hash([]byte("state transition"))
	sig, err := signer.Sign(digest)
	require.NoError(t, err)
	return signer, digest, sig
}

// highSTwin converts a signature into its malleable counterpart:
// (r, n-s, flipped v). Both forms verify against the same public key under
// plain ECDSA, which is exactly why the canonical policy rejects one of them.
func highSTwin(t *testing.T, sig sign.Signature) sign.Signature {
	t.Helper()
	n := secp256k1.S256().N
	s := new(big.Int).SetBytes(sig[32:64])
	flipped := new(big.Int).Sub(n, s)

	var r, sArr [32]byte
	copy(r[:], sig[:32])
	flipped.FillBytes(sArr[:])

	v := sig.V()
	switch v {
	case 27:
		v = 28
	case 28:
		v = 27
	case 0:
		v = 1
	case 1:
		v = 0
	}
	return sign.FromRSV(r, sArr, v)
}

func TestRecoverAddress(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		signer, digest, sig := signedDigest(t)

		addr, err := sign.NewEthereumAddressRecoverer().RecoverAddress(digest, sig)
		require.NoError(t, err)
		assert.True(t, addr.Equals(signer.Address()))
	})

	t.Run("raw recovery id form is normalized", func(t *testing.T) {
		signer, digest, sig := signedDigest(t)

		raw := make(sign.Signature, len(sig))
		copy(raw, sig)
		raw[64] -= 27

		addr, err := sign.NewEthereumAddressRecoverer().RecoverAddress(digest, raw)
		require.NoError(t, err)
		assert.True(t, addr.Equals(signer.Address()))
	})

	t.Run("input signature is not mutated", func(t *testing.T) {
		_, digest, sig := signedDigest(t)
		v := sig.V()

		_, err := sign.NewEthereumAddressRecoverer().RecoverAddress(digest, sig)
		require.NoError(t, err)
		assert.Equal(t, v, sig.V())
	})

	t.Run("different digest recovers a different address", func(t *testing.T) {
		signer, _, sig := signedDigest(t)

		other := crypto.Keccak256Hash([]byte("some other payload"))
		addr, err := sign.NewEthereumAddressRecoverer().RecoverAddress(other, sig)
		if err != nil {
			assert.ErrorIs(t, err, sign.ErrRecoveryFailure)
			return
		}
		assert.False(t, addr.Equals(signer.Address()))
	})
}

// TestRecoverAddressReferenceVector recovers the published signature of the
// EIP-712 Ether Mail example, signed by the key keccak256("cow").
func TestRecoverAddressReferenceVector(t *testing.T) {
	digest := common.HexToHash("0xbe609aee343fb3c4b28e1df9e632fca64fcfaede20f02e86244efddf30957bd2")

	var r, s [32]byte
	copy(r[:], common.FromHex("0x4355c47d63924e8a72e509b65029052eb6c299d53a04e167c5775fd466751c9d"))
	copy(s[:], common.FromHex("0x07299936d304c153f6443dfa05f40ff007d72911b6f72307f996231605b91562"))
	sig := sign.FromRSV(r, s, 28)

	addr, err := sign.NewEthereumAddressRecoverer().RecoverAddress(digest, sig)
	require.NoError(t, err)
	assert.Equal(t, "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826", addr.String())
}

func TestRecoverAddressMalleability(t *testing.T) {
	signer, digest, sig := signedDigest(t)
	twin := highSTwin(t, sig)

	t.Run("high-s twin is rejected by default", func(t *testing.T) {
		_, err := sign.NewEthereumAddressRecoverer().RecoverAddress(digest, twin)
		assert.ErrorIs(t, err, sign.ErrNonCanonicalSignature)
		// The non-canonical error is a member of the invalid signature class.
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)
	})

	t.Run("high-s twin recovers under the opt-in policy", func(t *testing.T) {
		recoverer := sign.NewEthereumAddressRecoverer(sign.WithAllowHighS())
		addr, err := recoverer.RecoverAddress(digest, twin)
		require.NoError(t, err)
		assert.True(t, addr.Equals(signer.Address()))
	})

	t.Run("low-s original still recovers under the opt-in policy", func(t *testing.T) {
		recoverer := sign.NewEthereumAddressRecoverer(sign.WithAllowHighS())
		addr, err := recoverer.RecoverAddress(digest, sig)
		require.NoError(t, err)
		assert.True(t, addr.Equals(signer.Address()))
	})
}

func TestRecoverAddressValidation(t *testing.T) {
	recoverer := sign.NewEthereumAddressRecoverer()
	_, digest, sig := signedDigest(t)

	curveOrderBytes := func() [32]byte {
		var n [32]byte
		secp256k1.S256().N.FillBytes(n[:])
		return n
	}

	t.Run("wrong length", func(t *testing.T) {
		for _, n := range []int{0, 64, 66} {
			_, err := recoverer.RecoverAddress(digest, make(sign.Signature, n))
			assert.ErrorIs(t, err, sign.ErrInvalidSignature, "length %d", n)
		}
	})

	t.Run("zero r", func(t *testing.T) {
		bad := sign.FromRSV([32]byte{}, sig.S(), sig.V())
		_, err := recoverer.RecoverAddress(digest, bad)
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)
	})

	t.Run("zero s", func(t *testing.T) {
		bad := sign.FromRSV(sig.R(), [32]byte{}, sig.V())
		_, err := recoverer.RecoverAddress(digest, bad)
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)
	})

	t.Run("r at curve order", func(t *testing.T) {
		bad := sign.FromRSV(curveOrderBytes(), sig.S(), sig.V())
		_, err := recoverer.RecoverAddress(digest, bad)
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)
	})

	t.Run("s at curve order", func(t *testing.T) {
		bad := sign.FromRSV(sig.R(), curveOrderBytes(), sig.V())
		_, err := recoverer.RecoverAddress(digest, bad)
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)
	})

	t.Run("s at curve order is out of range even with high-s allowed", func(t *testing.T) {
		permissive := sign.NewEthereumAddressRecoverer(sign.WithAllowHighS())
		bad := sign.FromRSV(sig.R(), curveOrderBytes(), sig.V())
		_, err := permissive.RecoverAddress(digest, bad)
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)
	})

	t.Run("eip-155 style v", func(t *testing.T) {
		for _, v := range []byte{2, 26, 29, 37, 38} {
			bad := sign.FromRSV(sig.R(), sig.S(), v)
			_, err := recoverer.RecoverAddress(digest, bad)
			assert.ErrorIs(t, err, sign.ErrInvalidSignature, "v %d", v)
		}
	})
}
