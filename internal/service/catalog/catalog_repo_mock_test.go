package catalog

import (
	"context"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Catalog, error)
	GetByNameFunc     func(ctx context.Context, name string) (*domain.Catalog, error)
	ListFunc          func(ctx context.Context) ([]domain.Catalog, error)
	CreateFunc        func(ctx context.Context, c *domain.Catalog) (*domain.Catalog, error)
	AddItemsFunc      func(ctx context.Context, catalogID uuid.UUID, items []domain.CatalogItem) ([]domain.CatalogItem, error)
	SetItemActiveFunc func(ctx context.Context, itemID uuid.UUID, active bool) error
	SoftDeleteFunc    func(ctx context.Context, id uuid.UUID, deletedBy string) error
	GetSettingFunc    func(ctx context.Context, key string) (string, error)
	SetSettingFunc    func(ctx context.Context, key string, value string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Catalog
		}
		AddItems []struct {
			Ctx       context.Context
			CatalogID uuid.UUID
			Items     []domain.CatalogItem
		}
		SetItemActive []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			Active bool
		}
		SoftDelete []struct {
			Ctx       context.Context
			Id        uuid.UUID
			DeletedBy string
		}
		GetSetting []struct {
			Ctx context.Context
			Key string
		}
		SetSetting []struct {
			Ctx   context.Context
			Key   string
			Value string
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByName     sync.RWMutex
	lockList          sync.RWMutex
	lockCreate        sync.RWMutex
	lockAddItems      sync.RWMutex
	lockSetItemActive sync.RWMutex
	lockSoftDelete    sync.RWMutex
	lockGetSetting    sync.RWMutex
	lockSetSetting    sync.RWMutex
}

func (mock *catalogRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Catalog, error) {
	if mock.GetByIDFunc == nil {
		panic("catalogRepoMock.GetByIDFunc: method is nil but catalogRepo.GetByID was just called")
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

func (mock *catalogRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *catalogRepoMock) GetByName(ctx context.Context, name string) (*domain.Catalog, error) {
	if mock.GetByNameFunc == nil {
		panic("catalogRepoMock.GetByNameFunc: method is nil but catalogRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *catalogRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *catalogRepoMock) List(ctx context.Context) ([]domain.Catalog, error) {
	if mock.ListFunc == nil {
		panic("catalogRepoMock.ListFunc: method is nil but catalogRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *catalogRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *catalogRepoMock) Create(ctx context.Context, c *domain.Catalog) (*domain.Catalog, error) {
	if mock.CreateFunc == nil {
		panic("catalogRepoMock.CreateFunc: method is nil but catalogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Catalog
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *catalogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Catalog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *catalogRepoMock) AddItems(ctx context.Context, catalogID uuid.UUID, items []domain.CatalogItem) ([]domain.CatalogItem, error) {
	if mock.AddItemsFunc == nil {
		panic("catalogRepoMock.AddItemsFunc: method is nil but catalogRepo.AddItems was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CatalogID uuid.UUID
		Items     []domain.CatalogItem
	}{Ctx: ctx, CatalogID: catalogID, Items: items}
	mock.lockAddItems.Lock()
	mock.calls.AddItems = append(mock.calls.AddItems, callInfo)
	mock.lockAddItems.Unlock()
	return mock.AddItemsFunc(ctx, catalogID, items)
}

func (mock *catalogRepoMock) AddItemsCalls() []struct {
	Ctx       context.Context
	CatalogID uuid.UUID
	Items     []domain.CatalogItem
} {
	mock.lockAddItems.RLock()
	calls := mock.calls.AddItems
	mock.lockAddItems.RUnlock()
	return calls
}

func (mock *catalogRepoMock) SetItemActive(ctx context.Context, itemID uuid.UUID, active bool) error {
	if mock.SetItemActiveFunc == nil {
		panic("catalogRepoMock.SetItemActiveFunc: method is nil but catalogRepo.SetItemActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		Active bool
	}{Ctx: ctx, ItemID: itemID, Active: active}
	mock.lockSetItemActive.Lock()
	mock.calls.SetItemActive = append(mock.calls.SetItemActive, callInfo)
	mock.lockSetItemActive.Unlock()
	return mock.SetItemActiveFunc(ctx, itemID, active)
}

func (mock *catalogRepoMock) SetItemActiveCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	Active bool
} {
	mock.lockSetItemActive.RLock()
	calls := mock.calls.SetItemActive
	mock.lockSetItemActive.RUnlock()
	return calls
}

func (mock *catalogRepoMock) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	if mock.SoftDeleteFunc == nil {
		panic("catalogRepoMock.SoftDeleteFunc: method is nil but catalogRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        uuid.UUID
		DeletedBy string
	}{Ctx: ctx, Id: id, DeletedBy: deletedBy}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, deletedBy)
}

func (mock *catalogRepoMock) SoftDeleteCalls() []struct {
	Ctx       context.Context
	Id        uuid.UUID
	DeletedBy string
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *catalogRepoMock) GetSetting(ctx context.Context, key string) (string, error) {
	if mock.GetSettingFunc == nil {
		panic("catalogRepoMock.GetSettingFunc: method is nil but catalogRepo.GetSetting was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGetSetting.Lock()
	mock.calls.GetSetting = append(mock.calls.GetSetting, callInfo)
	mock.lockGetSetting.Unlock()
	return mock.GetSettingFunc(ctx, key)
}

func (mock *catalogRepoMock) GetSettingCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGetSetting.RLock()
	calls := mock.calls.GetSetting
	mock.lockGetSetting.RUnlock()
	return calls
}

func (mock *catalogRepoMock) SetSetting(ctx context.Context, key string, value string) error {
	if mock.SetSettingFunc == nil {
		panic("catalogRepoMock.SetSettingFunc: method is nil but catalogRepo.SetSetting was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   string
		Value string
	}{Ctx: ctx, Key: key, Value: value}
	mock.lockSetSetting.Lock()
	mock.calls.SetSetting = append(mock.calls.SetSetting, callInfo)
	mock.lockSetSetting.Unlock()
	return mock.SetSettingFunc(ctx, key, value)
}

func (mock *catalogRepoMock) SetSettingCalls() []struct {
	Ctx   context.Context
	Key   string
	Value string
} {
	mock.lockSetSetting.RLock()
	calls := mock.calls.SetSetting
	mock.lockSetSetting.RUnlock()
	return calls
}
