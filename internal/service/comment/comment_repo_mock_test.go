package comment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	// CreateFunc mocks the Create method.
	CreateFunc func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)

	// ListByItemFunc mocks the ListByItem method.
	ListByItemFunc func(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error)

	// calls tracks calls to the methods.
	calls struct {
		// Create holds details about calls to the Create method.
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		// ListByItem holds details about calls to the ListByItem method.
		ListByItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockListByItem sync.RWMutex
}

// Create calls CreateFunc.
func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Comment
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// ListByItem calls ListByItemFunc.
func (mock *commentRepoMock) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error) {
	if mock.ListByItemFunc == nil {
		panic("commentRepoMock.ListByItemFunc: method is nil but commentRepo.ListByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockListByItem.Lock()
	mock.calls.ListByItem = append(mock.calls.ListByItem, callInfo)
	mock.lockListByItem.Unlock()
	return mock.ListByItemFunc(ctx, itemID)
}

// ListByItemCalls gets all the calls that were made to ListByItem.
func (mock *commentRepoMock) ListByItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}
	mock.lockListByItem.RLock()
	calls = mock.calls.ListByItem
	mock.lockListByItem.RUnlock()
	return calls
}

