package ordering

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	// CreateFunc mocks the Create method.
	CreateFunc func(ctx context.Context, o *domain.Order) (*domain.Order, error)

	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// ListByBuyerFunc mocks the ListByBuyer method.
	ListByBuyerFunc func(ctx context.Context, buyerID uuid.UUID) ([]domain.Order, error)

	// ListBySellerFunc mocks the ListBySeller method.
	ListBySellerFunc func(ctx context.Context, sellerID uuid.UUID) ([]domain.Order, error)

	// UpdateStatusFunc mocks the UpdateStatus method.
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, from domain.OrderStatus, to domain.OrderStatus) (*domain.Order, error)

	// calls tracks calls to the methods.
	calls struct {
		// Create holds details about calls to the Create method.
		Create []struct {
			Ctx context.Context
			O   *domain.Order
		}
		// GetByID holds details about calls to the GetByID method.
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		// ListByBuyer holds details about calls to the ListByBuyer method.
		ListByBuyer []struct {
			Ctx     context.Context
			BuyerID uuid.UUID
		}
		// ListBySeller holds details about calls to the ListBySeller method.
		ListBySeller []struct {
			Ctx      context.Context
			SellerID uuid.UUID
		}
		// UpdateStatus holds details about calls to the UpdateStatus method.
		UpdateStatus []struct {
			Ctx  context.Context
			ID   uuid.UUID
			From domain.OrderStatus
			To   domain.OrderStatus
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByBuyer  sync.RWMutex
	lockListBySeller sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

// Create calls CreateFunc.
func (mock *orderRepoMock) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if mock.CreateFunc == nil {
		panic("orderRepoMock.CreateFunc: method is nil but orderRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   *domain.Order
	}{
		Ctx: ctx,
		O:   o,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, o)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *orderRepoMock) CreateCalls() []struct {
	Ctx context.Context
	O   *domain.Order
} {
	var calls []struct {
		Ctx context.Context
		O   *domain.Order
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// GetByID calls GetByIDFunc.
func (mock *orderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if mock.GetByIDFunc == nil {
		panic("orderRepoMock.GetByIDFunc: method is nil but orderRepo.GetByID was just called")
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
func (mock *orderRepoMock) GetByIDCalls() []struct {
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

// ListByBuyer calls ListByBuyerFunc.
func (mock *orderRepoMock) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]domain.Order, error) {
	if mock.ListByBuyerFunc == nil {
		panic("orderRepoMock.ListByBuyerFunc: method is nil but orderRepo.ListByBuyer was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BuyerID uuid.UUID
	}{
		Ctx:     ctx,
		BuyerID: buyerID,
	}
	mock.lockListByBuyer.Lock()
	mock.calls.ListByBuyer = append(mock.calls.ListByBuyer, callInfo)
	mock.lockListByBuyer.Unlock()
	return mock.ListByBuyerFunc(ctx, buyerID)
}

// ListByBuyerCalls gets all the calls that were made to ListByBuyer.
func (mock *orderRepoMock) ListByBuyerCalls() []struct {
	Ctx     context.Context
	BuyerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		BuyerID uuid.UUID
	}
	mock.lockListByBuyer.RLock()
	calls = mock.calls.ListByBuyer
	mock.lockListByBuyer.RUnlock()
	return calls
}

// ListBySeller calls ListBySellerFunc.
func (mock *orderRepoMock) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Order, error) {
	if mock.ListBySellerFunc == nil {
		panic("orderRepoMock.ListBySellerFunc: method is nil but orderRepo.ListBySeller was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SellerID uuid.UUID
	}{
		Ctx:      ctx,
		SellerID: sellerID,
	}
	mock.lockListBySeller.Lock()
	mock.calls.ListBySeller = append(mock.calls.ListBySeller, callInfo)
	mock.lockListBySeller.Unlock()
	return mock.ListBySellerFunc(ctx, sellerID)
}

// ListBySellerCalls gets all the calls that were made to ListBySeller.
func (mock *orderRepoMock) ListBySellerCalls() []struct {
	Ctx      context.Context
	SellerID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		SellerID uuid.UUID
	}
	mock.lockListBySeller.RLock()
	calls = mock.calls.ListBySeller
	mock.lockListBySeller.RUnlock()
	return calls
}

// UpdateStatus calls UpdateStatusFunc.
func (mock *orderRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, from domain.OrderStatus, to domain.OrderStatus) (*domain.Order, error) {
	if mock.UpdateStatusFunc == nil {
		panic("orderRepoMock.UpdateStatusFunc: method is nil but orderRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		From domain.OrderStatus
		To   domain.OrderStatus
	}{
		Ctx:  ctx,
		ID:   id,
		From: from,
		To:   to,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, from, to)
}

// UpdateStatusCalls gets all the calls that were made to UpdateStatus.
func (mock *orderRepoMock) UpdateStatusCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	From domain.OrderStatus
	To   domain.OrderStatus
} {
	var calls []struct {
		Ctx  context.Context
		ID   uuid.UUID
		From domain.OrderStatus
		To   domain.OrderStatus
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

