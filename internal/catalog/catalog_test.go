package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceKeysAreUniqueTitles(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Services() {
		assert.Equal(t, s.Title, s.Key)
		assert.False(t, seen[s.Key], "duplicate key %q", s.Key)
		seen[s.Key] = true
	}
	assert.Len(t, seen, 6)
}

func TestLookupService(t *testing.T) {
	s, ok := LookupService("Замена масла")
	require.True(t, ok)
	assert.Equal(t, "от 2 500 ₽", s.Price)

	_, ok = LookupService("Покраска")
	assert.False(t, ok)
}

func TestServiceAt(t *testing.T) {
	s, ok := ServiceAt(0)
	require.True(t, ok)
	assert.Equal(t, "Ремонт МКПП", s.Key)

	_, ok = ServiceAt(-1)
	assert.False(t, ok)
	_, ok = ServiceAt(len(Services()))
	assert.False(t, ok)
}

func TestServicesReturnsCopy(t *testing.T) {
	list := Services()
	list[0].Key = "mutated"

	s, _ := ServiceAt(0)
	assert.Equal(t, "Ремонт МКПП", s.Key)
}

func TestSlots(t *testing.T) {
	got := Slots()
	require.Len(t, got, 10)
	assert.Equal(t, "09:00", got[0])
	assert.Equal(t, "18:00", got[len(got)-1])

	assert.True(t, IsSlot("10:00"))
	assert.False(t, IsSlot("19:00"))
	assert.False(t, IsSlot(""))
}
