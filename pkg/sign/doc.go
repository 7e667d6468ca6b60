// Package sign provides signing and signature-recovery primitives over
// 32-byte signing digests.
//
// The primary interfaces are:
//
//   - Signer: produces a Signature for a digest
//   - PublicKey: public key operations and address derivation
//   - Address: a blockchain address with a string form and equality
//   - AddressRecoverer: recovers the signer's address from a signature
//
// The Ethereum implementations work on secp256k1: EthereumSigner signs with
// a local ECDSA key, and EthereumAddressRecoverer validates a compact
// 65-byte signature (r ‖ s ‖ v) and recovers the signer's address from the
// digest. Validation rejects r or s outside [1, n-1] and, by default,
// signatures whose s lies in the upper half of the curve order — the
// malleable twin (r, n−s, 1−v) of every valid signature. Callers that must
// accept legacy high-s signatures opt in with WithAllowHighS.
//
// Recovery success is not authorization: RecoverAddress returns an address,
// and comparing it against an expected signer is the caller's job.
//
// Mock implementations are provided for tests that need deterministic
// signatures without elliptic-curve math.
package sign
