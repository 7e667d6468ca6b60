// Package verify ties digest construction and address recovery into a
// single verification flow.
//
// A Verifier takes a digest request, a compact signature and an expected
// signer, rebuilds the signing digest, recovers the signer address and
// compares it against the expected one. The outcomes are kept distinct:
//
//   - (true, nil): the signature is valid and was produced by the expected
//     signer
//   - (false, nil): the signature is well-formed and recoverable, but the
//     recovered address is a different signer
//   - (false, err): the request or signature is malformed, non-canonical or
//     unrecoverable; err carries the taxonomy sentinel
//
// Recovery success alone is never treated as authorization.
//
// The package also carries the operational surface: environment-driven
// configuration (Config) and Prometheus counters for verification attempts
// by scheme and failure reason (Metrics).
package verify
