package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// UpdateFunc mocks the Update method.
	UpdateFunc func(ctx context.Context, id uuid.UUID, ch domain.ProfileChanges) (*domain.Profile, error)

	// calls tracks calls to the methods.
	calls struct {
		// GetByID holds details about calls to the GetByID method.
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		// Update holds details about calls to the Update method.
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			Ch  domain.ProfileChanges
		}
	}
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
}

// GetByID calls GetByIDFunc.
func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

// Update calls UpdateFunc.
func (mock *profileRepoMock) Update(ctx context.Context, id uuid.UUID, ch domain.ProfileChanges) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Ch  domain.ProfileChanges
	}{
		Ctx: ctx,
		ID:  id,
		Ch:  ch,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, ch)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *profileRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Ch  domain.ProfileChanges
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		Ch  domain.ProfileChanges
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

