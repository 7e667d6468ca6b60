package typeddata

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// DomainType is the well-known name of the EIP-712 domain struct.
const DomainType = "EIP712Domain"

// Domain identifies the application context a signing request belongs to.
// It is an immutable value: construct once per application, reuse across
// calls. Name and Version are always part of the domain struct; ChainID,
// VerifyingContract and Salt are encoded only when non-nil, and their
// presence changes the domain's type hash, not just its value.
type Domain struct {
	Name              string
	Version           string
	ChainID           *uint256.Int
	VerifyingContract *common.Address
	Salt              *common.Hash
}

// IsZero reports whether no domain field is populated.
func (d Domain) IsZero() bool {
	return d.Name == "" && d.Version == "" &&
		d.ChainID == nil && d.VerifyingContract == nil && d.Salt == nil
}

// fields returns the EIP712Domain type definition and the matching value,
// both derived from one walk over the populated fields. The declared field
// list and the encoded data therefore cannot disagree about which optional
// fields are present.
func (d Domain) fields() ([]Field, Value) {
	fs := []Field{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
	}
	val := Value{
		"name":    d.Name,
		"version": d.Version,
	}
	if d.ChainID != nil {
		fs = append(fs, Field{Name: "chainId", Type: "uint256"})
		val["chainId"] = d.ChainID
	}
	if d.VerifyingContract != nil {
		fs = append(fs, Field{Name: "verifyingContract", Type: "address"})
		val["verifyingContract"] = *d.VerifyingContract
	}
	if d.Salt != nil {
		fs = append(fs, Field{Name: "salt", Type: "bytes32"})
		val["salt"] = d.Salt.Bytes()
	}
	return fs, val
}

// Types returns a registry containing only the EIP712Domain definition for
// this domain's populated fields.
func (d Domain) Types() Types {
	fs, _ := d.fields()
	return Types{DomainType: fs}
}
