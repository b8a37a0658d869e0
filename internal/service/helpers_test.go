package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// jsonField returns the raw JSON of key in the object payload.
func jsonField(t *testing.T, payload []byte, key string) string {
	t.Helper()

	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &obj))
	require.Contains(t, obj, key)
	return string(obj[key])
}
