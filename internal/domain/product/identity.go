package product

import (
	"strconv"
	"strings"

	"authentithief/internal/pkg/errs"
	"authentithief/internal/pkg/keccak"
)

// KeyScheme selects which ledger fields identify a product for scan tracking.
type KeyScheme string

const (
	KeySchemeName      KeyScheme = "name"
	KeySchemeNameBrand KeyScheme = "name_brand"
	KeySchemeCompound  KeyScheme = "compound"
)

func ParseKeyScheme(s string) (KeyScheme, error) {
	switch KeyScheme(strings.ToLower(strings.TrimSpace(s))) {
	case KeySchemeName:
		return KeySchemeName, nil
	case KeySchemeNameBrand:
		return KeySchemeNameBrand, nil
	case KeySchemeCompound, "":
		return KeySchemeCompound, nil
	default:
		return "", errs.Wrapf(ErrKeyScheme, "scheme %q", s)
	}
}

// IdentityKey is the opaque scan-ledger key for one product identity.
type IdentityKey string

func (k IdentityKey) String() string { return string(k) }

// Key derives the identity key for a ledger record. Text fields are folded to
// lower case so the key agrees with the case-insensitive ledger match.
func (s KeyScheme) Key(rec LedgerRecord) IdentityKey {
	name := strings.ToLower(strings.TrimSpace(rec.Name))
	switch s {
	case KeySchemeName:
		return IdentityKey(keccak.Hex(string(s), name))
	case KeySchemeNameBrand:
		return IdentityKey(keccak.Hex(string(s), name, strings.ToLower(strings.TrimSpace(rec.Brand))))
	default:
		return IdentityKey(keccak.Hex(
			string(KeySchemeCompound),
			name,
			strings.ToLower(strings.TrimSpace(rec.Owner)),
			strconv.FormatInt(rec.RegistrationTimestamp, 10),
		))
	}
}
