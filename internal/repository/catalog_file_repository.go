package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"medequip-rental-backend/internal/domain/entity"
	domainRepo "medequip-rental-backend/internal/domain/repository"

	"github.com/google/uuid"
)

// catalogFileRepository is a MachineRepository over a flat JSON file, for
// deployments without a database behind the catalog. The whole list is
// read once at startup, held in memory, and rewritten wholesale on every
// mutation. Ids are uuids, so a deleted id is never reissued.
type catalogFileRepository struct {
	mu       sync.RWMutex
	path     string
	machines []entity.Machine
}

func NewCatalogFileRepository(path string) (domainRepo.MachineRepository, error) {
	repo := &catalogFileRepository{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repo, nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &repo.machines); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file: %w", err)
		}
	}

	return repo, nil
}

// save rewrites the whole catalog. Caller must hold mu.
func (r *catalogFileRepository) save() error {
	data, err := json.MarshalIndent(r.machines, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return os.Rename(tmp, r.path)
}

func (r *catalogFileRepository) Create(ctx context.Context, machine *entity.Machine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if machine.ID == uuid.Nil {
		machine.ID = uuid.New()
	}
	now := time.Now()
	machine.CreatedAt = now
	machine.UpdatedAt = now

	r.machines = append(r.machines, *machine)
	if err := r.save(); err != nil {
		r.machines = r.machines[:len(r.machines)-1]
		return err
	}
	return nil
}

func (r *catalogFileRepository) FindAll(ctx context.Context) ([]entity.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	machines := make([]entity.Machine, len(r.machines))
	copy(machines, r.machines)
	return machines, nil
}

func (r *catalogFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.machines {
		if r.machines[i].ID == id {
			machine := r.machines[i]
			return &machine, nil
		}
	}
	return nil, nil
}

func (r *catalogFileRepository) Update(ctx context.Context, machine *entity.Machine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.machines {
		if r.machines[i].ID == machine.ID {
			previous := r.machines[i]
			machine.CreatedAt = previous.CreatedAt
			machine.UpdatedAt = time.Now()
			r.machines[i] = *machine
			if err := r.save(); err != nil {
				r.machines[i] = previous
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("machine %s not found in catalog file", machine.ID)
}

func (r *catalogFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.machines {
		if r.machines[i].ID == id {
			removed := r.machines[i]
			r.machines = append(r.machines[:i], r.machines[i+1:]...)
			if err := r.save(); err != nil {
				r.machines = append(r.machines[:i], append([]entity.Machine{removed}, r.machines[i:]...)...)
				return err
			}
			return nil
		}
	}
	return nil
}
