package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"medequip-rental-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogMachine(name string) *entity.Machine {
	return &entity.Machine{
		Name:         name,
		Type:         "Monitor",
		Category:     "Monitoring",
		Condition:    entity.ConditionGood,
		Description:  "Bedside monitor",
		Price:        decimal.NewFromInt(2500),
		Availability: true,
		RentalPricing: entity.RentalPricing{
			PerDay: decimal.NewFromInt(50),
		},
	}
}

func TestCatalogFileRepository_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := NewCatalogFileRepository(path)
	require.NoError(t, err)

	machines, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, machines)
}

func TestCatalogFileRepository_CreatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := NewCatalogFileRepository(path)
	require.NoError(t, err)

	machine := catalogMachine("Monitor A")
	require.NoError(t, repo.Create(context.Background(), machine))
	assert.NotEqual(t, uuid.Nil, machine.ID)

	// A fresh repository over the same file sees the machine.
	reopened, err := NewCatalogFileRepository(path)
	require.NoError(t, err)

	machines, err := reopened.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, machines, 1)
	assert.Equal(t, machine.ID, machines[0].ID)
	assert.Equal(t, "Monitor A", machines[0].Name)
	assert.True(t, decimal.NewFromInt(2500).Equal(machines[0].Price))
}

func TestCatalogFileRepository_UpdateAndDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := NewCatalogFileRepository(path)
	require.NoError(t, err)

	machine := catalogMachine("Monitor A")
	require.NoError(t, repo.Create(context.Background(), machine))

	machine.Name = "Monitor A rev2"
	require.NoError(t, repo.Update(context.Background(), machine))

	found, err := repo.FindByID(context.Background(), machine.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Monitor A rev2", found.Name)

	require.NoError(t, repo.Delete(context.Background(), machine.ID))

	found, err = repo.FindByID(context.Background(), machine.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	machines, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, machines)
}

func TestCatalogFileRepository_UpdateUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := NewCatalogFileRepository(path)
	require.NoError(t, err)

	ghost := catalogMachine("Ghost")
	ghost.ID = uuid.New()
	err = repo.Update(context.Background(), ghost)
	assert.Error(t, err)
}

func TestCatalogFileRepository_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewCatalogFileRepository(path)
	assert.Error(t, err)
}

func TestCatalogFileRepository_PreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := NewCatalogFileRepository(path)
	require.NoError(t, err)

	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, repo.Create(context.Background(), catalogMachine(name)))
	}

	machines, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, machines, 3)
	assert.Equal(t, "First", machines[0].Name)
	assert.Equal(t, "Second", machines[1].Name)
	assert.Equal(t, "Third", machines[2].Name)
}
