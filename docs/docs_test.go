package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/brand-catalog-api/docs"
)

func TestDocumentoRegistrado(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Contains(t, doc.Paths, "/api/v1/brands/cheapest")
	assert.Contains(t, doc.Paths["/api/v1/products/{id}/price"], "patch")
	assert.Contains(t, doc.Paths, "/api/v1/categories/{category}/price-stats")
}
