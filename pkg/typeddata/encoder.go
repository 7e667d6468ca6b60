package typeddata

import (
	"bytes"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// maxEncodeDepth bounds struct nesting so a degenerate value cannot recurse
// unboundedly through self-referential type definitions.
const maxEncodeDepth = 32

// Encoder computes EIP-712 type hashes, struct hashes and domain separators.
// The zero value is not usable; construct with NewEncoder. An Encoder is
// immutable and safe for concurrent use.
type Encoder struct {
	hasher Hasher
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithHasher replaces the production keccak256 hasher. Intended for tests
// that want deterministic, cryptography-free hashing.
func WithHasher(h Hasher) EncoderOption {
	return func(e *Encoder) { e.hasher = h }
}

// NewEncoder creates an Encoder backed by keccak256 unless overridden.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{hasher: KeccakHasher{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Hasher exposes the encoder's hash primitive so collaborating components
// (e.g. the digest builder) frame bytes with the same function.
func (e *Encoder) Hasher() Hasher {
	return e.hasher
}

// EncodeType returns the canonical type string for primary, including the
// lexicographically sorted definitions of all referenced struct types.
func (e *Encoder) EncodeType(types Types, primary string) (string, error) {
	return types.encodeType(primary)
}

// TypeHash hashes the canonical type string of primary.
func (e *Encoder) TypeHash(types Types, primary string) (common.Hash, error) {
	enc, err := types.encodeType(primary)
	if err != nil {
		return common.Hash{}, err
	}
	return e.hasher.Sum([]byte(enc)), nil
}

// HashStruct computes hash(typeHash ‖ encodeData(value)), the standard's
// canonical per-struct hash. Repeated calls with equal inputs always yield
// the same digest.
func (e *Encoder) HashStruct(types Types, primary string, value Value) (common.Hash, error) {
	enc, err := e.encodeData(types, primary, value, 1)
	if err != nil {
		return common.Hash{}, err
	}
	return e.hasher.Sum(enc), nil
}

// EncodeData returns typeHash ‖ encoded fields without the final hash.
// Exposed so tests can assert the exact byte layout.
func (e *Encoder) EncodeData(types Types, primary string, value Value) ([]byte, error) {
	return e.encodeData(types, primary, value, 1)
}

// DomainSeparator computes the struct hash of the domain over an
// EIP712Domain definition containing exactly the populated fields.
func (e *Encoder) DomainSeparator(d Domain) (common.Hash, error) {
	if d.IsZero() {
		return common.Hash{}, errors.Wrap(ErrSchemaMismatch, "empty domain")
	}
	fs, val := d.fields()
	return e.HashStruct(Types{DomainType: fs}, DomainType, val)
}

func (e *Encoder) encodeData(types Types, primary string, value Value, depth int) ([]byte, error) {
	if depth > maxEncodeDepth {
		return nil, errors.Wrapf(ErrSchemaMismatch, "struct nesting exceeds %d levels", maxEncodeDepth)
	}
	fields, ok := types[primary]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedType, "type %q is not defined", primary)
	}
	if len(value) > len(fields) {
		return nil, errors.Wrapf(ErrSchemaMismatch, "extra fields provided for %s: got %d values for %d fields",
			primary, len(value), len(fields))
	}

	typeHash, err := e.TypeHash(types, primary)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(typeHash.Bytes())
	for _, field := range fields {
		v, ok := value[field.Name]
		if !ok {
			return nil, errors.Wrapf(ErrSchemaMismatch, "missing field %s.%s", primary, field.Name)
		}
		word, err := e.encodeValue(types, field.Type, v, depth)
		if err != nil {
			return nil, errors.WithMessagef(err, "field %s.%s", primary, field.Name)
		}
		buf.Write(word)
	}
	return buf.Bytes(), nil
}

// encodeValue produces the 32-byte slot for one value: primitives encode in
// place, dynamic types and nested structs are replaced by hashes, arrays by
// the hash of their concatenated element encodings.
func (e *Encoder) encodeValue(types Types, typ string, v any, depth int) ([]byte, error) {
	if elem, size, isArray := parseArrayType(typ); isArray {
		items, ok := asSlice(v)
		if !ok {
			return nil, errors.Wrapf(ErrSchemaMismatch, "expected array for type %s, got %T", typ, v)
		}
		if size >= 0 && len(items) != size {
			return nil, errors.Wrapf(ErrSchemaMismatch, "array length %d does not match fixed size %s",
				len(items), typ)
		}
		var concat bytes.Buffer
		for i, item := range items {
			word, err := e.encodeValue(types, elem, item, depth)
			if err != nil {
				return nil, errors.WithMessagef(err, "index %d", i)
			}
			concat.Write(word)
		}
		sum := e.hasher.Sum(concat.Bytes())
		return sum.Bytes(), nil
	}

	if _, isStruct := types[typ]; isStruct {
		nested, ok := asValue(v)
		if !ok {
			return nil, errors.Wrapf(ErrSchemaMismatch, "expected struct value for type %s, got %T", typ, v)
		}
		enc, err := e.encodeData(types, typ, nested, depth+1)
		if err != nil {
			return nil, err
		}
		sum := e.hasher.Sum(enc)
		return sum.Bytes(), nil
	}
	return e.encodePrimitive(typ, v)
}

func (e *Encoder) encodePrimitive(encType string, v any) ([]byte, error) {
	switch encType {
	case "address":
		addr, ok := asAddress(v)
		if !ok {
			return nil, errors.Wrapf(ErrSchemaMismatch, "invalid address value %v", v)
		}
		word := make([]byte, 32)
		copy(word[12:], addr.Bytes())
		return word, nil

	case "bool":
		b, ok := v.(bool)
		if !ok {
			return nil, errors.Wrapf(ErrSchemaMismatch, "expected bool, got %T", v)
		}
		word := make([]byte, 32)
		if b {
			word[31] = 1
		}
		return word, nil

	case "string":
		s, ok := v.(string)
		if !ok {
			return nil, errors.Wrapf(ErrSchemaMismatch, "expected string, got %T", v)
		}
		sum := e.hasher.Sum([]byte(s))
		return sum.Bytes(), nil

	case "bytes":
		b, ok := asBytes(v)
		if !ok {
			return nil, errors.Wrapf(ErrSchemaMismatch, "expected bytes, got %T", v)
		}
		sum := e.hasher.Sum(b)
		return sum.Bytes(), nil
	}

	if strings.HasPrefix(encType, "bytes") {
		n, err := strconv.Atoi(strings.TrimPrefix(encType, "bytes"))
		if err != nil || n < 1 || n > 32 {
			return nil, errors.Wrapf(ErrUnsupportedType, "invalid fixed bytes type %q", encType)
		}
		b, ok := asBytes(v)
		if !ok || len(b) != n {
			return nil, errors.Wrapf(ErrSchemaMismatch, "expected %d bytes for %s", n, encType)
		}
		// Fixed-size bytes are right-padded per the ABI, unlike integers.
		word := make([]byte, 32)
		copy(word, b)
		return word, nil
	}

	if strings.HasPrefix(encType, "uint") || strings.HasPrefix(encType, "int") {
		b, err := e.parseInteger(encType, v)
		if err != nil {
			return nil, err
		}
		return ethmath.U256Bytes(new(big.Int).Set(b)), nil
	}

	return nil, errors.Wrapf(ErrUnsupportedType, "unrecognized type %q", encType)
}

// parseInteger normalizes the accepted integer representations and enforces
// the declared bit width.
func (e *Encoder) parseInteger(encType string, v any) (*big.Int, error) {
	signed := strings.HasPrefix(encType, "int")
	sizeStr := strings.TrimPrefix(encType, "uint")
	if signed {
		sizeStr = strings.TrimPrefix(encType, "int")
	}
	size := 256
	if sizeStr != "" {
		n, err := strconv.Atoi(sizeStr)
		if err != nil || n < 8 || n > 256 || n%8 != 0 {
			return nil, errors.Wrapf(ErrUnsupportedType, "invalid integer type %q", encType)
		}
		size = n
	}

	var b *big.Int
	switch n := v.(type) {
	case *big.Int:
		b = new(big.Int).Set(n)
	case big.Int:
		b = new(big.Int).Set(&n)
	case *uint256.Int:
		b = n.ToBig()
	case uint256.Int:
		b = n.ToBig()
	case string:
		parsed, ok := ethmath.ParseBig256(n)
		if !ok {
			return nil, errors.Wrapf(ErrSchemaMismatch, "invalid integer literal %q", n)
		}
		b = parsed
	case int:
		b = big.NewInt(int64(n))
	case int8:
		b = big.NewInt(int64(n))
	case int16:
		b = big.NewInt(int64(n))
	case int32:
		b = big.NewInt(int64(n))
	case int64:
		b = big.NewInt(n)
	case uint:
		b = new(big.Int).SetUint64(uint64(n))
	case uint8:
		b = new(big.Int).SetUint64(uint64(n))
	case uint16:
		b = new(big.Int).SetUint64(uint64(n))
	case uint32:
		b = new(big.Int).SetUint64(uint64(n))
	case uint64:
		b = new(big.Int).SetUint64(n)
	case float64:
		// JSON numbers decode as float64; only integral values are valid.
		if float64(int64(n)) != n {
			return nil, errors.Wrapf(ErrSchemaMismatch, "non-integral value %v for %s", n, encType)
		}
		b = big.NewInt(int64(n))
	default:
		return nil, errors.Wrapf(ErrSchemaMismatch, "invalid integer value %T for %s", v, encType)
	}

	if !signed && b.Sign() < 0 {
		return nil, errors.Wrapf(ErrSchemaMismatch, "negative value for unsigned type %s", encType)
	}
	if b.BitLen() > size {
		return nil, errors.Wrapf(ErrSchemaMismatch, "integer larger than %s", encType)
	}
	return b, nil
}

func asAddress(v any) (common.Address, bool) {
	switch a := v.(type) {
	case common.Address:
		return a, true
	case *common.Address:
		if a == nil {
			return common.Address{}, false
		}
		return *a, true
	case string:
		if !common.IsHexAddress(a) {
			return common.Address{}, false
		}
		return common.HexToAddress(a), true
	}
	return common.Address{}, false
}

func asBytes(v any) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case hexutil.Bytes:
		return b, true
	case common.Hash:
		return b.Bytes(), true
	case string:
		decoded, err := hexutil.Decode(b)
		if err != nil {
			return nil, false
		}
		return decoded, true
	}
	return nil, false
}

func asValue(v any) (Value, bool) {
	switch m := v.(type) {
	case Value:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
