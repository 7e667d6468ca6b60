// Package typeddata implements EIP-712 structured data encoding.
//
// The package turns a struct type registry (Types), a value (Value) and a
// signing Domain into the canonical 32-byte hashes defined by the standard:
//
//   - TypeHash: hash of a struct's canonical type string
//   - HashStruct: hash(typeHash ‖ encodeData(value))
//   - DomainSeparator: HashStruct of the EIP712Domain struct
//
// Type strings follow the standard's ordering rule: the primary type's
// definition first, then the definitions of every referenced struct type,
// each exactly once, sorted lexicographically by name. Two registries with
// the same fields in a different declaration order are different types and
// hash differently on purpose.
//
// The hash primitive is injected through the Hasher interface. Production
// code uses KeccakHasher (go-ethereum's keccak256); tests may substitute a
// deterministic fake so encoding layout can be verified without any real
// cryptography.
//
// All operations are pure functions over their inputs. Types, Domain and
// Encoder are safe for concurrent use once constructed.
package typeddata
