// Package digest assembles the exact byte sequences hashed for Ethereum
// signing schemes and produces the final 32-byte signing digest.
//
// All three 0x19-prefixed framings from EIP-191 are supported:
//
//   - 0x00 "intended validator": 0x19 ‖ 0x00 ‖ validator ‖ data
//   - 0x45 "personal_sign":      0x19 ‖ "Ethereum Signed Message:\n" ‖ len ‖ msg
//   - 0x01 EIP-712 typed data:   0x19 ‖ 0x01 ‖ domainSeparator ‖ hashStruct(msg)
//
// The validator form never hashes caller data a second time: callers must
// pre-hash structured content down to exactly 32 bytes, and the builder
// rejects anything else so one scheme's payload can never be confused with
// another's.
package digest

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/statelayer/sigil/pkg/typeddata"
)

// ErrSchemeMismatch is returned when a build request's context data is
// inconsistent with the requested signing scheme, e.g. an EIP-712 digest
// requested without a domain.
var ErrSchemeMismatch = errors.New("digest: context does not match requested scheme")

// Scheme is the EIP-191 version byte selecting a digest framing.
type Scheme byte

const (
	// SchemeValidator is EIP-191 version 0x00 (data with intended validator).
	SchemeValidator Scheme = 0x00
	// SchemeTyped is EIP-191 version 0x01 (EIP-712 structured data).
	SchemeTyped Scheme = 0x01
	// SchemePersonal is EIP-191 version 0x45, the personal_sign framing.
	// 0x45 is the 'E' of the "Ethereum Signed Message:\n" prefix.
	SchemePersonal Scheme = 0x45
)

// String returns a human-readable scheme name for logs and metrics labels.
func (s Scheme) String() string {
	switch s {
	case SchemeValidator:
		return "validator"
	case SchemeTyped:
		return "typed"
	case SchemePersonal:
		return "personal"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(s))
	}
}

const personalPrefix = "\x19Ethereum Signed Message:\n"

// validatorSlotWidth is the only payload length the 0x00 form accepts;
// callers pre-hash structured content to a single 32-byte slot.
const validatorSlotWidth = 32

// Builder produces signing digests. It shares the typed data encoder's hash
// primitive so every scheme is framed with the same function. Immutable and
// safe for concurrent use.
type Builder struct {
	enc    *typeddata.Encoder
	hasher typeddata.Hasher
}

// NewBuilder creates a Builder over the given encoder. A nil encoder gets
// the default keccak256-backed one.
func NewBuilder(enc *typeddata.Encoder) *Builder {
	if enc == nil {
		enc = typeddata.NewEncoder()
	}
	return &Builder{enc: enc, hasher: enc.Hasher()}
}

// Validator computes the EIP-191 0x00 digest binding data to an intended
// validator address. data must be exactly 32 bytes; the builder applies no
// secondary hash, so structured content has to be pre-hashed by the caller.
func (b *Builder) Validator(validator common.Address, data []byte) (common.Hash, error) {
	if len(data) != validatorSlotWidth {
		return common.Hash{}, errors.Wrapf(ErrSchemeMismatch,
			"validator scheme payload must be %d bytes, got %d", validatorSlotWidth, len(data))
	}
	return b.hasher.Sum([]byte{0x19, 0x00}, validator.Bytes(), data), nil
}

// Personal computes the EIP-191 0x45 personal_sign digest, prefixing the
// message with its decimal byte length.
func (b *Builder) Personal(message []byte) common.Hash {
	return b.hasher.Sum([]byte(personalPrefix), []byte(strconv.Itoa(len(message))), message)
}

// Typed computes the EIP-712 digest 0x19 ‖ 0x01 ‖ domainSeparator ‖
// hashStruct(message). The domain must have at least one populated field.
func (b *Builder) Typed(domain typeddata.Domain, types typeddata.Types, primary string, message typeddata.Value) (common.Hash, error) {
	if domain.IsZero() {
		return common.Hash{}, errors.Wrap(ErrSchemeMismatch, "typed scheme requires a domain")
	}
	separator, err := b.enc.DomainSeparator(domain)
	if err != nil {
		return common.Hash{}, err
	}
	structHash, err := b.enc.HashStruct(types, primary, message)
	if err != nil {
		return common.Hash{}, err
	}
	return b.hasher.Sum([]byte{0x19, 0x01}, separator.Bytes(), structHash.Bytes()), nil
}

// Request carries one digest build: the scheme plus the fields that scheme
// needs. Fields belonging to other schemes must be left zero.
type Request struct {
	Scheme Scheme

	// Validator scheme (0x00).
	Validator *common.Address
	Data      []byte

	// Personal scheme (0x45).
	Message []byte

	// Typed scheme (0x01).
	Domain      *typeddata.Domain
	Types       typeddata.Types
	PrimaryType string
	TypedValue  typeddata.Value
}

// Build dispatches a Request to the scheme-specific builder, rejecting
// requests whose context data does not match the declared scheme.
func (b *Builder) Build(req Request) (common.Hash, error) {
	switch req.Scheme {
	case SchemeValidator:
		if req.Validator == nil {
			return common.Hash{}, errors.Wrap(ErrSchemeMismatch, "validator scheme requires a validator address")
		}
		return b.Validator(*req.Validator, req.Data)
	case SchemePersonal:
		if req.Message == nil {
			return common.Hash{}, errors.Wrap(ErrSchemeMismatch, "personal scheme requires a message")
		}
		return b.Personal(req.Message), nil
	case SchemeTyped:
		if req.Domain == nil {
			return common.Hash{}, errors.Wrap(ErrSchemeMismatch, "typed scheme requires a domain")
		}
		if req.PrimaryType == "" {
			return common.Hash{}, errors.Wrap(ErrSchemeMismatch, "typed scheme requires a primary type")
		}
		return b.Typed(*req.Domain, req.Types, req.PrimaryType, req.TypedValue)
	default:
		return common.Hash{}, errors.Wrapf(ErrSchemeMismatch, "unknown scheme %s", req.Scheme)
	}
}
