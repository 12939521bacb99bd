package vehicule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanGestionnaireSet(t *testing.T) {
	v := &Vehicule{Statut: StatutDisponible}
	assert.True(t, v.CanGestionnaireSet(StatutMaintenance))
	assert.True(t, v.CanGestionnaireSet(StatutDisponible))
	assert.False(t, v.CanGestionnaireSet(StatutEnUtilisation))

	v.Statut = StatutMaintenance
	assert.True(t, v.CanGestionnaireSet(StatutDisponible))

	// frozen while a livraison holds it
	v.Statut = StatutEnUtilisation
	assert.False(t, v.CanGestionnaireSet(StatutDisponible))
	assert.False(t, v.CanGestionnaireSet(StatutMaintenance))
}
