package verify

import (
	"github.com/pkg/errors"

	"github.com/statelayer/sigil/pkg/digest"
	"github.com/statelayer/sigil/pkg/log"
	"github.com/statelayer/sigil/pkg/sign"
	"github.com/statelayer/sigil/pkg/typeddata"
)

// Verifier rebuilds signing digests and checks signatures against an
// expected signer. Immutable and safe for concurrent use.
type Verifier struct {
	builder   *digest.Builder
	recoverer sign.AddressRecoverer
	logger    log.Logger
	metrics   *Metrics
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithBuilder replaces the default digest builder.
func WithBuilder(b *digest.Builder) VerifierOption {
	return func(v *Verifier) { v.builder = b }
}

// WithRecoverer replaces the default address recoverer. Use this to opt in
// to high-s signatures or to plug a mock for tests.
func WithRecoverer(r sign.AddressRecoverer) VerifierOption {
	return func(v *Verifier) { v.recoverer = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(lg log.Logger) VerifierOption {
	return func(v *Verifier) { v.logger = lg }
}

// WithMetrics sets the metrics sink. The default records nothing.
func WithMetrics(m *Metrics) VerifierOption {
	return func(v *Verifier) { v.metrics = m }
}

// NewVerifier creates a Verifier with a keccak256 digest builder and a
// canonical low-s Ethereum recoverer unless overridden.
func NewVerifier(opts ...VerifierOption) *Verifier {
	v := &Verifier{
		builder:   digest.NewBuilder(nil),
		recoverer: sign.NewEthereumAddressRecoverer(),
		logger:    log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Recover builds the digest for the request and recovers the signer's
// address from the signature. Errors carry the taxonomy sentinels from the
// digest, typeddata and sign packages.
func (v *Verifier) Recover(req digest.Request, sig sign.Signature) (sign.Address, error) {
	scheme := req.Scheme.String()
	v.metrics.countAttempt(scheme)

	dig, err := v.builder.Build(req)
	if err != nil {
		v.metrics.countFailure(scheme, failureReason(err))
		v.logger.Debug("digest construction failed", "scheme", scheme, "err", err)
		return nil, err
	}

	addr, err := v.recoverer.RecoverAddress(dig, sig)
	if err != nil {
		v.metrics.countFailure(scheme, failureReason(err))
		v.logger.Debug("address recovery failed", "scheme", scheme, "digest", dig, "err", err)
		return nil, err
	}

	v.logger.Debug("address recovered", "scheme", scheme, "digest", dig, "signer", addr)
	return addr, nil
}

// Verify checks that the signature over the request's digest was produced by
// the expected signer.
//
// It returns (false, nil) only when the signature is well-formed and
// recoverable but belongs to a different signer. Malformed requests and
// signatures return (false, err) so callers can distinguish "wrong signer"
// from "garbage input".
func (v *Verifier) Verify(req digest.Request, sig sign.Signature, expected sign.Address) (bool, error) {
	recovered, err := v.Recover(req, sig)
	if err != nil {
		return false, err
	}

	scheme := req.Scheme.String()
	if !recovered.Equals(expected) {
		v.metrics.countMismatch(scheme)
		v.logger.Info("signer mismatch",
			"scheme", scheme,
			"recovered", recovered,
			"expected", expected,
		)
		return false, nil
	}

	v.metrics.countSuccess(scheme)
	return true, nil
}

// failureReason maps a taxonomy error to a bounded metrics label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, typeddata.ErrSchemaMismatch):
		return "schema_mismatch"
	case errors.Is(err, typeddata.ErrUnsupportedType):
		return "unsupported_type"
	case errors.Is(err, digest.ErrSchemeMismatch):
		return "scheme_mismatch"
	case errors.Is(err, sign.ErrNonCanonicalSignature):
		return "non_canonical_signature"
	case errors.Is(err, sign.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, sign.ErrRecoveryFailure):
		return "recovery_failure"
	default:
		return "other"
	}
}
