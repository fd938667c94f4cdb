package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Sandwich API", doc.Info["title"])
	for _, p := range []string{"/resources", "/resources/{id}", "/sandwiches", "/sandwiches/{id}"} {
		assert.Contains(t, doc.Paths, p)
	}
	assert.Len(t, doc.Paths["/sandwiches/{id}"], 3)
}
