package exporters

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDatabaseJSON(t *testing.T) {
	doc, err := EncodeDatabaseJSON(testDatabase())
	require.NoError(t, err)

	t.Run("encoding twice yields identical output", func(t *testing.T) {
		again, err := EncodeDatabaseJSON(testDatabase())
		require.NoError(t, err)
		assert.Equal(t, doc, again)
	})

	var parsed map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	root, ok := parsed["sistema_medico"]
	require.True(t, ok, "document must be rooted at sistema_medico")

	t.Run("keys are renamed to snake case", func(t *testing.T) {
		patients := root["pacientes"].([]interface{})
		require.Len(t, patients, 1)
		patient := patients[0].(map[string]interface{})

		personal := patient["datos_personales"].(map[string]interface{})
		assert.Equal(t, "1710034065", personal["cedula"])
		assert.Equal(t, "O+", personal["tipo_sangre"])
		assert.Equal(t, "Soltero", personal["estado_civil"])
		assert.Equal(t, "No especificado", personal["nacionalidad"])
	})

	t.Run("measurements carry their units", func(t *testing.T) {
		patient := root["pacientes"].([]interface{})[0].(map[string]interface{})
		medical := patient["datos_medicos"].(map[string]interface{})

		weight := medical["peso"].(map[string]interface{})
		assert.Equal(t, 72.5, weight["valor"])
		assert.Equal(t, "kg", weight["unidad"])

		height := medical["estatura"].(map[string]interface{})
		assert.Equal(t, 1.75, height["valor"])
		assert.Equal(t, "m", height["unidad"])
	})

	t.Run("invoice cost is a money object", func(t *testing.T) {
		invoice := root["facturas"].([]interface{})[0].(map[string]interface{})
		cost := invoice["costo"].(map[string]interface{})
		assert.Equal(t, float64(25), cost["valor"])
		assert.Equal(t, "USD", cost["moneda"])

		ref := invoice["paciente"].(map[string]interface{})
		assert.Equal(t, "Juan Pérez", ref["nombre"])
		assert.Equal(t, "1710034065", ref["cedula"])
	})

	t.Run("empty collections stay as empty arrays", func(t *testing.T) {
		assert.Empty(t, root["citas"])
		assert.Empty(t, root["medicos"])
		assert.Empty(t, root["historias"])
	})

	t.Run("two space indentation", func(t *testing.T) {
		assert.Contains(t, doc, "{\n  \"sistema_medico\": {")
	})
}

func TestEncodeCollectionJSON(t *testing.T) {
	db := testDatabase()

	t.Run("single collection is keyed by its name", func(t *testing.T) {
		doc, err := EncodeCollectionJSON(db, "facturas")
		require.NoError(t, err)

		var parsed map[string][]map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
		require.Len(t, parsed["facturas"], 1)
		assert.Equal(t, "FACT-20260801100000-ABC123", parsed["facturas"][0]["numero_factura"])
	})

	t.Run("unknown collection is rejected", func(t *testing.T) {
		_, err := EncodeCollectionJSON(db, "usuarios")
		assert.Error(t, err)
	})
}
