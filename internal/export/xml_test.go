package export

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/thermo-data-service/internal/catalog"
	"github.com/couchcryptid/thermo-data-service/internal/thermo"
	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	data, err := os.ReadFile("../thermoinp/testdata/thermo.inp")
	require.NoError(t, err)
	db, err := thermoinp.Decode(string(data))
	require.NoError(t, err)
	return catalog.New(db, thermo.CEA())
}

func catalogEntry(t *testing.T, cat *catalog.Catalog, name string) *catalog.Entry {
	t.Helper()
	entry, err := cat.Species(name)
	require.NoError(t, err)
	return entry
}

func TestWriteXML(t *testing.T) {
	cat := loadTestCatalog(t)

	t.Run("modelled species", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteXML(&buf, []*catalog.Entry{catalogEntry(t, cat, "H2")})

		require.NoError(t, err)
		out := buf.String()
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(`<?xml version="1.0" encoding="UTF-8"?>`)))
		assert.Contains(t, out, "<chemdb>")
		assert.Contains(t, out, `<species name="H2">`)
		assert.Contains(t, out, `<molar_mass units="kg/mol">`)
		assert.Contains(t, out, `<formation_enthalpy units="J/mol">0</formation_enthalpy>`)
		assert.Contains(t, out, `<thermo Tmin="200" Tmax="20000">`)
		assert.Contains(t, out, `<interval Tmin="200" Tmax="1000">`)
		assert.Contains(t, out, "<coefficients>4.078323210D+04 -8.009186040D+02")
		assert.Contains(t, out, "<integ_constants>2.682484665D+03 -3.043788844D+01</integ_constants>")
		assert.Contains(t, out, "</chemdb>\n")
	})

	t.Run("assigned-enthalpy reactant omits model elements", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteXML(&buf, []*catalog.Entry{catalogEntry(t, cat, "RP-1")})

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, `<species name="RP-1">`)
		assert.Contains(t, out, `<gas_constant units="J/kg-K">`)
		assert.NotContains(t, out, "<formation_enthalpy")
		assert.NotContains(t, out, "<thermo")
	})

	t.Run("multiple species in argument order", func(t *testing.T) {
		var buf bytes.Buffer
		entries := []*catalog.Entry{
			catalogEntry(t, cat, "Air"),
			catalogEntry(t, cat, "e-"),
		}
		err := WriteXML(&buf, entries)

		require.NoError(t, err)
		out := buf.String()
		assert.Less(t, bytes.Index(buf.Bytes(), []byte(`name="Air"`)), bytes.Index(buf.Bytes(), []byte(`name="e-"`)))
		assert.Contains(t, out, `<species name="e-">`)
	})
}
