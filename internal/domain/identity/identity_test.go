package identity

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	scopes := []Scope{ScopeLocation, ScopeProduct, ScopeVariant, ScopeCategory, ScopeList}
	keys := []int64{0, 1, 42, 999999, 1<<53 - 1}

	for _, scope := range scopes {
		for _, key := range keys {
			encoded := Encode(scope, key)

			decoded, ok := Decode(encoded)
			require.True(t, ok, "Decode(Encode(%s, %d)) should succeed", scope, key)
			assert.Equal(t, scope, decoded.Scope)
			assert.Equal(t, key, decoded.Key)
		}
	}
}

func TestEncodeRecord_MatchesEncode(t *testing.T) {
	id := RecordID{Scope: ScopeVariant, Key: 7}
	assert.Equal(t, Encode(ScopeVariant, 7), EncodeRecord(id))
}

func TestEncode_IsOpaque(t *testing.T) {
	encoded := Encode(ScopeProduct, 15)

	// The raw key must not appear in the token itself.
	assert.NotContains(t, encoded, "product")
	assert.NotContains(t, encoded, ":")

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "product:15", string(raw))
}

func TestDecode_MalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty string", encoded: ""},
		{name: "not base64", encoded: "!!!not-base64!!!"},
		{name: "no separator", encoded: base64.StdEncoding.EncodeToString([]byte("product15"))},
		{name: "non-numeric key", encoded: base64.StdEncoding.EncodeToString([]byte("product:abc"))},
		{name: "empty key", encoded: base64.StdEncoding.EncodeToString([]byte("product:"))},
		{name: "negative key", encoded: base64.StdEncoding.EncodeToString([]byte("product:-3"))},
		{name: "unknown scope", encoded: base64.StdEncoding.EncodeToString([]byte("warehouse:5"))},
		{name: "empty scope", encoded: base64.StdEncoding.EncodeToString([]byte(":5"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, ok := Decode(tt.encoded)
			assert.False(t, ok)
			assert.Equal(t, RecordID{}, decoded)
		})
	}
}

func TestScope_IsValid(t *testing.T) {
	assert.True(t, ScopeLocation.IsValid())
	assert.True(t, ScopeList.IsValid())
	assert.False(t, Scope("warehouse").IsValid())
	assert.False(t, Scope("").IsValid())
}
