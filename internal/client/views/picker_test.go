package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/useradmin/internal/client/models"
)

func rolesPicker() *Picker {
	return NewMultiPicker([]models.LovRef{roleAdmin, roleOps, roleAudit})
}

func TestPicker_FilterMatchesCodeOrNameIgnoringCase(t *testing.T) {
	p := rolesPicker()

	assert.Equal(t, []models.LovRef{roleAdmin}, p.Filter("adm"))
	assert.Equal(t, []models.LovRef{roleAudit}, p.Filter("AUDIT"))
	assert.Equal(t, []models.LovRef{roleAdmin, roleOps}, p.Filter("ra"))
	assert.Len(t, p.Filter("  "), 3)
	assert.Empty(t, p.Filter("zzz"))
}

func TestPicker_SingleReplacesSelection(t *testing.T) {
	p := NewSinglePicker([]models.LovRef{rankCaptain, rankMajor})

	require.NoError(t, p.Select("rank-1"))
	require.NoError(t, p.Select("maj"))

	assert.Equal(t, "rank-2", p.Value())
	assert.Equal(t, &rankMajor, p.Ref())
}

func TestPicker_MultiAccumulatesWithoutDuplicates(t *testing.T) {
	p := rolesPicker()

	require.NoError(t, p.Select("role-2"))
	require.NoError(t, p.Select("ADM"))
	require.NoError(t, p.Select("role-2"))

	assert.Equal(t, []string{"role-2", "role-1"}, p.UUIDs())
	assert.Equal(t, []models.LovRef{roleOps, roleAdmin}, p.Selected())

	p.Deselect("OPS")
	assert.Equal(t, []string{"role-1"}, p.UUIDs())

	p.Clear()
	assert.Empty(t, p.UUIDs())
	assert.Nil(t, p.Ref())
}

func TestPicker_UnknownOption(t *testing.T) {
	p := rolesPicker()
	assert.ErrorIs(t, p.Select("nope"), ErrUnknownOption)
	assert.Empty(t, p.UUIDs())
}

func TestPicker_PreselectSkipsStaleOptions(t *testing.T) {
	p := rolesPicker()
	p.Preselect(roleAudit, models.LovRef{UUID: "gone"}, roleAdmin)
	assert.Equal(t, []string{"role-3", "role-1"}, p.UUIDs())

	single := NewSinglePicker([]models.LovRef{rankCaptain})
	single.Preselect(models.LovRef{UUID: "gone"}, rankCaptain)
	assert.Equal(t, "rank-1", single.Value())
}
