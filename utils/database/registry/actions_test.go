package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionCatalogValidate(t *testing.T) {
	db := testDB(t)
	catalog := NewActionCatalog(db)

	name, err := catalog.Validate(ActionHiring)
	require.NoError(t, err)
	assert.Equal(t, ActionHiring, name)

	_, err = catalog.Validate("Ушёл в отпуск")
	assert.Error(t, err)
}

func TestActionCatalogNames(t *testing.T) {
	db := testDB(t)
	catalog := NewActionCatalog(db)

	names, err := catalog.Names()
	require.NoError(t, err)
	assert.Len(t, names, 10)
	assert.Contains(t, names, ActionDismissal)
	assert.Contains(t, names, ActionPromotion)
}

func TestActionCatalogCaches(t *testing.T) {
	db := testDB(t)
	catalog := NewActionCatalog(db)

	_, err := catalog.Validate(ActionHiring)
	require.NoError(t, err)

	// A freshly loaded catalog survives the backing table changing
	// until the TTL expires.
	_, err = db.Exec("DELETE FROM actions")
	require.NoError(t, err)

	_, err = catalog.Validate(ActionHiring)
	assert.NoError(t, err)
}
