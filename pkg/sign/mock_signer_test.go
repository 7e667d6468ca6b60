package sign_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statelayer/sigil/pkg/sign"
)

func TestMockSigner(t *testing.T) {
	signer := sign.NewMockSigner("alice")
	assert.Equal(t, "alice", signer.Address().String())
	assert.Equal(t, []byte("alice"), signer.PublicKey().Bytes())

	digest := crypto.Keccak256Hash([]byte("payload"))
	sig, err := signer.Sign(digest)
	require.NoError(t, err)

	t.Run("recovers the signer id", func(t *testing.T) {
		addr, err := sign.NewMockRecoverer().RecoverAddress(digest, sig)
		require.NoError(t, err)
		assert.True(t, addr.Equals(signer.Address()))
	})

	t.Run("signature is bound to the digest", func(t *testing.T) {
		other := crypto.Keccak256Hash([]byte("different payload"))
		_, err := sign.NewMockRecoverer().RecoverAddress(other, sig)
		assert.ErrorIs(t, err, sign.ErrRecoveryFailure)
	})

	t.Run("garbage signature", func(t *testing.T) {
		_, err := sign.NewMockRecoverer().RecoverAddress(digest, sign.Signature("nonsense"))
		assert.ErrorIs(t, err, sign.ErrRecoveryFailure)
	})

	t.Run("missing marker", func(t *testing.T) {
		_, err := sign.NewMockRecoverer().RecoverAddress(digest, sign.Signature(digest.Bytes()))
		assert.ErrorIs(t, err, sign.ErrInvalidSignature)
	})
}

func TestMockAddressEquals(t *testing.T) {
	assert.True(t, sign.MockAddress("alice").Equals(sign.MockAddress("alice")))
	assert.False(t, sign.MockAddress("alice").Equals(sign.MockAddress("bob")))
}
