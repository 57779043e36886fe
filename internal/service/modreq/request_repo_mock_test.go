package modreq

import (
	"context"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.ModificationRequest, error)
	GetPendingByEntryFunc func(ctx context.Context, entryID uuid.UUID) (*domain.ModificationRequest, error)
	ListFunc              func(ctx context.Context, f domain.RequestFilter) ([]domain.ModificationRequest, error)
	CreateFunc            func(ctx context.Context, req *domain.ModificationRequest) (*domain.ModificationRequest, error)
	ReviewFunc            func(ctx context.Context, id uuid.UUID, status domain.RequestStatus, reviewedBy uuid.UUID, reviewComment *string, reviewedAt time.Time) (*domain.ModificationRequest, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetPendingByEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.RequestFilter
		}
		Create []struct {
			Ctx context.Context
			Req *domain.ModificationRequest
		}
		Review []struct {
			Ctx           context.Context
			Id            uuid.UUID
			Status        domain.RequestStatus
			ReviewedBy    uuid.UUID
			ReviewComment *string
			ReviewedAt    time.Time
		}
	}
	lockGetByID           sync.RWMutex
	lockGetPendingByEntry sync.RWMutex
	lockList              sync.RWMutex
	lockCreate            sync.RWMutex
	lockReview            sync.RWMutex
}

func (mock *requestRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModificationRequest, error) {
	if mock.GetByIDFunc == nil {
		panic("requestRepoMock.GetByIDFunc: method is nil but requestRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *requestRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *requestRepoMock) GetPendingByEntry(ctx context.Context, entryID uuid.UUID) (*domain.ModificationRequest, error) {
	if mock.GetPendingByEntryFunc == nil {
		panic("requestRepoMock.GetPendingByEntryFunc: method is nil but requestRepo.GetPendingByEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockGetPendingByEntry.Lock()
	mock.calls.GetPendingByEntry = append(mock.calls.GetPendingByEntry, callInfo)
	mock.lockGetPendingByEntry.Unlock()
	return mock.GetPendingByEntryFunc(ctx, entryID)
}

func (mock *requestRepoMock) GetPendingByEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockGetPendingByEntry.RLock()
	calls := mock.calls.GetPendingByEntry
	mock.lockGetPendingByEntry.RUnlock()
	return calls
}

func (mock *requestRepoMock) List(ctx context.Context, f domain.RequestFilter) ([]domain.ModificationRequest, error) {
	if mock.ListFunc == nil {
		panic("requestRepoMock.ListFunc: method is nil but requestRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.RequestFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *requestRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.RequestFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *requestRepoMock) Create(ctx context.Context, req *domain.ModificationRequest) (*domain.ModificationRequest, error) {
	if mock.CreateFunc == nil {
		panic("requestRepoMock.CreateFunc: method is nil but requestRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req *domain.ModificationRequest
	}{Ctx: ctx, Req: req}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *requestRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Req *domain.ModificationRequest
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requestRepoMock) Review(ctx context.Context, id uuid.UUID, status domain.RequestStatus, reviewedBy uuid.UUID, reviewComment *string, reviewedAt time.Time) (*domain.ModificationRequest, error) {
	if mock.ReviewFunc == nil {
		panic("requestRepoMock.ReviewFunc: method is nil but requestRepo.Review was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		Id            uuid.UUID
		Status        domain.RequestStatus
		ReviewedBy    uuid.UUID
		ReviewComment *string
		ReviewedAt    time.Time
	}{Ctx: ctx, Id: id, Status: status, ReviewedBy: reviewedBy, ReviewComment: reviewComment, ReviewedAt: reviewedAt}
	mock.lockReview.Lock()
	mock.calls.Review = append(mock.calls.Review, callInfo)
	mock.lockReview.Unlock()
	return mock.ReviewFunc(ctx, id, status, reviewedBy, reviewComment, reviewedAt)
}

func (mock *requestRepoMock) ReviewCalls() []struct {
	Ctx           context.Context
	Id            uuid.UUID
	Status        domain.RequestStatus
	ReviewedBy    uuid.UUID
	ReviewComment *string
	ReviewedAt    time.Time
} {
	mock.lockReview.RLock()
	calls := mock.calls.Review
	mock.lockReview.RUnlock()
	return calls
}
