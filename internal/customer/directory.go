// Package customer looks up registered customer profiles by mobile number.
package customer

import (
	"context"
	"errors"
	"sync"

	"loan-assistant/internal/models"
)

// ErrNotFound is returned when no profile is registered for a mobile number.
var ErrNotFound = errors.New("customer not found")

// Directory finds profiles by exact mobile number match.
type Directory interface {
	FindByMobile(ctx context.Context, mobile string) (*models.CustomerProfile, error)
}

// MemoryDirectory serves profiles from an in-process map.
type MemoryDirectory struct {
	mu       sync.RWMutex
	byMobile map[string]models.CustomerProfile
}

func NewMemoryDirectory(profiles ...models.CustomerProfile) *MemoryDirectory {
	d := &MemoryDirectory{byMobile: make(map[string]models.CustomerProfile, len(profiles))}
	for _, p := range profiles {
		d.Add(p)
	}
	return d
}

// NewDemoDirectory returns a MemoryDirectory seeded with DemoProfiles.
func NewDemoDirectory() *MemoryDirectory {
	return NewMemoryDirectory(DemoProfiles()...)
}

// Add registers or replaces the profile for p.Mobile.
func (d *MemoryDirectory) Add(p models.CustomerProfile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byMobile[p.Mobile] = p
}

// FindByMobile returns a copy, so callers cannot mutate the directory.
func (d *MemoryDirectory) FindByMobile(ctx context.Context, mobile string) (*models.CustomerProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	p, ok := d.byMobile[mobile]
	d.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	p.ExistingLoans = append([]models.ExistingLoan(nil), p.ExistingLoans...)
	return &p, nil
}
