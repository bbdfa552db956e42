// Package identity implements the opaque identifier scheme used at the API
// boundary. An external ID is the base64 encoding of "<scope>:<key>", where
// the scope tags which entity the internal key refers to. Internal row keys
// never cross the boundary unencoded.
package identity

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Scope identifies which entity a decoded ID refers to. Scopes are mutually
// exclusive views over different row sets; an ID decoded with the wrong scope
// must be rejected by the consuming resolver.
type Scope string

const (
	// ScopeLocation tags a merchant storefront location.
	ScopeLocation Scope = "location"
	// ScopeProduct tags a generic product.
	ScopeProduct Scope = "product"
	// ScopeVariant tags a product as sold at one specific location.
	ScopeVariant Scope = "variant"
	// ScopeCategory tags a product category.
	ScopeCategory Scope = "category"
	// ScopeList tags a user's product list.
	ScopeList Scope = "list"
)

// String returns the string representation of the Scope.
func (s Scope) String() string {
	return string(s)
}

// IsValid checks if the Scope is one of the fixed enumerated set.
func (s Scope) IsValid() bool {
	switch s {
	case ScopeLocation, ScopeProduct, ScopeVariant, ScopeCategory, ScopeList:
		return true
	default:
		return false
	}
}

// RecordID is a decoded external identifier: a scope tag plus the internal
// row key it refers to.
type RecordID struct {
	Scope Scope
	Key   int64
}

// Encode serializes a scope and internal key into the opaque external token.
// Encode(s, k) and Decode are inverses for every valid scope and key >= 0.
func Encode(scope Scope, key int64) string {
	return base64.StdEncoding.EncodeToString([]byte(scope.String() + ":" + strconv.FormatInt(key, 10)))
}

// EncodeRecord serializes an already-assembled RecordID.
func EncodeRecord(id RecordID) string {
	return Encode(id.Scope, id.Key)
}

// Decode parses an opaque external token back into its scope and internal
// key. It reports false on any malformed input (bad base64, missing
// separator, non-numeric or negative key, unknown scope) so callers can turn
// the failure into a domain error instead of recovering from a panic.
func Decode(encoded string) (RecordID, bool) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return RecordID{}, false
	}

	scopePart, keyPart, found := strings.Cut(string(raw), ":")
	if !found {
		return RecordID{}, false
	}

	key, err := strconv.ParseInt(keyPart, 10, 64)
	if err != nil || key < 0 {
		return RecordID{}, false
	}

	scope := Scope(scopePart)
	if !scope.IsValid() {
		return RecordID{}, false
	}

	return RecordID{Scope: scope, Key: key}, true
}
