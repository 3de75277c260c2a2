package populate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   uuid.UUID
	Name string
}

func itemID(i *item) uuid.UUID { return i.ID }

func TestResolveKeepsOrderAndNullsDangling(t *testing.T) {
	a := item{ID: uuid.New(), Name: "a"}
	b := item{ID: uuid.New(), Name: "b"}
	missing := uuid.New()

	index := Index([]item{a, b}, itemID)
	resolved := Resolve([]uuid.UUID{b.ID, missing, a.ID, b.ID}, index)

	require.Len(t, resolved, 4)
	assert.Equal(t, "b", resolved[0].Name)
	assert.Nil(t, resolved[1])
	assert.Equal(t, "a", resolved[2].Name)
	assert.Same(t, resolved[0], resolved[3])
}

func TestResolveEmpty(t *testing.T) {
	assert.Empty(t, Resolve[item](nil, map[uuid.UUID]*item{}))
}

func TestUnique(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, []uuid.UUID{a, b}, Unique([]uuid.UUID{a, b, a, b, a}))
	assert.Empty(t, Unique(nil))
}
