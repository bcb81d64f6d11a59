package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

func TestCatalogSubset(t *testing.T) {
	cat := loadTestCatalog(t)

	t.Run("structure and ordering", func(t *testing.T) {
		text, err := cat.Subset("H2", "Air")

		require.NoError(t, err)
		lines := strings.Split(text, "\n")
		assert.Equal(t, "thermo", strings.TrimRight(lines[0], " "))
		assert.Contains(t, lines[1], "200.000")
		assert.Contains(t, text, "\nH2 ")
		assert.Contains(t, text, "\nAir ")
		assert.NotContains(t, text, "RP-1")
		assert.NotContains(t, text, "Ag(cr)")

		// Products precede the END PRODUCTS marker, reactants follow it.
		endProducts := strings.Index(text, "END PRODUCTS")
		require.Positive(t, endProducts)
		assert.Less(t, strings.Index(text, "\nH2 "), endProducts)
		assert.Greater(t, strings.Index(text, "\nAir "), endProducts)
		assert.True(t, strings.HasSuffix(strings.TrimRight(text, " \n"), "END REACTANTS"))
	})

	t.Run("full subset reparses to an identical catalog", func(t *testing.T) {
		names := []string{"e-", "H2", "Ag(cr)", "Air", "JP-10(g)", "RP-1"}
		text, err := cat.Subset(names...)
		require.NoError(t, err)

		db, err := thermoinp.Decode(text)
		require.NoError(t, err)
		assert.Equal(t, 6, db.Len())
		for _, name := range names {
			_, err := cat.Species(name)
			assert.NoError(t, err, name)
		}
		assert.Equal(t, []string{"e-", "H2"}, cat.Names(thermoinp.GasProducts))
		assert.Equal(t, "H2", db.GasProducts[1].Name)
		assert.Equal(t, cat.byName["H2"].Record.Intervals, db.GasProducts[1].Intervals)
	})

	t.Run("source order is kept regardless of argument order", func(t *testing.T) {
		text, err := cat.Subset("H2", "e-")

		require.NoError(t, err)
		assert.Less(t, strings.Index(text, "\ne- "), strings.Index(text, "\nH2 "))
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := cat.Subset("H2", "unobtainium")

		require.Error(t, err)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "unobtainium", nf.Name)
	})
}
