package owners_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/memstore"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/owners"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *owners.App {
	return owners.NewApp(memstore.New(clockwork.NewFakeClock()))
}

func TestCreateOwner(t *testing.T) {
	ctx := context.Background()
	app := newApp()

	owner, err := app.CreateOwner(ctx, owners.CreateOwnerRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, owner.ID)

	_, err = app.CreateOwner(ctx, owners.CreateOwnerRequest{Email: "ana@example.com"})
	assert.True(t, apperrors.IsConflictError(err))

	fetched, err := app.GetOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", fetched.Name)
}

func TestCreateOwnerValidation(t *testing.T) {
	app := newApp()

	tests := []struct {
		name string
		req  owners.CreateOwnerRequest
	}{
		{name: "missing email", req: owners.CreateOwnerRequest{Name: "Ana"}},
		{name: "malformed email", req: owners.CreateOwnerRequest{Email: "ana"}},
		{name: "name too short", req: owners.CreateOwnerRequest{Name: "A", Email: "a@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.CreateOwner(context.Background(), tt.req)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestFindOrCreateOwnerConcurrently(t *testing.T) {
	ctx := context.Background()
	app := newApp()

	const callers = 8
	found := make([]*models.Owner, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			owner, err := app.FindOrCreateOwner(ctx, owners.CreateOwnerRequest{Email: "shared@example.com"})
			assert.NoError(t, err)
			found[i] = owner
		}(i)
	}
	wg.Wait()

	for _, owner := range found {
		require.NotNil(t, owner)
		assert.Equal(t, found[0].ID, owner.ID)
	}

	all, err := app.GetAllOwners(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byEmail, err := app.GetOwnersByEmail(ctx, "shared@example.com")
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)
}

func TestGetOwnerNotFound(t *testing.T) {
	_, err := newApp().GetOwner(context.Background(), uuid.New())
	assert.True(t, apperrors.IsNotFoundError(err))
}
