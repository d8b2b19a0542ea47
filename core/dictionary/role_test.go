package dictionary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_TextRoundTrip(t *testing.T) {
	for r := RoleUnassigned; r <= RoleUnknown; r++ {
		data, err := json.Marshal(r)
		require.NoError(t, err)

		var got Role
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r, got, string(data))
	}
}

func TestRole_UnmarshalTextUnknown(t *testing.T) {
	var r Role
	assert.ErrorContains(t, r.UnmarshalText([]byte("nickname")), `unknown role "nickname"`)
	assert.ErrorContains(t, r.UnmarshalText([]byte("invalid")), "unknown role")
}
