package kernel

import (
	"encoding/hex"
	"fmt"

	"trackledger/internal/pkg/errs"
	"trackledger/internal/pkg/guard"
)

// FingerprintLength is the exact byte length of a payload fingerprint.
const FingerprintLength = 32

// ErrFingerprintIsNotConstructed is returned when validating a zero-value Fingerprint.
var ErrFingerprintIsNotConstructed = errs.NewValueIsRequiredError(
	"Fingerprint must be created via FingerprintFromBytes or FingerprintFromHex")

// Fingerprint is an opaque, fixed-size content hash identifying a delivery
// payload. The ledger never interprets the hash, it only enforces the exact
// 32-byte length on construction.
type Fingerprint struct {
	hash  [FingerprintLength]byte
	guard guard.ConstructorGuard
}

// FingerprintFromBytes creates a Fingerprint from a byte slice.
// The slice must be exactly FingerprintLength bytes long.
func FingerprintFromBytes(b []byte) (Fingerprint, error) {
	if len(b) != FingerprintLength {
		return Fingerprint{}, errs.NewValueIsInvalidErrorWithCause("payload fingerprint",
			fmt.Errorf("fingerprint must be exactly %d bytes, got %d", FingerprintLength, len(b)))
	}

	fp := Fingerprint{guard: guard.NewConstructorGuard()}
	copy(fp.hash[:], b)
	return fp, nil
}

// FingerprintFromHex creates a Fingerprint from its hexadecimal string
// representation, as received on the transport surface.
func FingerprintFromHex(s string) (Fingerprint, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Fingerprint{}, errs.NewValueIsInvalidErrorWithCause("payload fingerprint", err)
	}
	return FingerprintFromBytes(b)
}

// Bytes returns a copy of the raw hash bytes.
func (f Fingerprint) Bytes() []byte {
	b := make([]byte, FingerprintLength)
	copy(b, f.hash[:])
	return b
}

// String returns the lowercase hexadecimal representation of the fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f.hash[:])
}

// IsEqual compares two fingerprints for byte equality.
func (f Fingerprint) IsEqual(other Fingerprint) bool {
	return f.hash == other.hash
}

// Validate checks that the Fingerprint was created via a constructor.
func (f Fingerprint) Validate() error {
	return f.guard.Validate(ErrFingerprintIsNotConstructed)
}
