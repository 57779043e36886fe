package modreq

import (
	"context"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc func(ctx context.Context, entityType domain.EntityType, entityID *uuid.UUID, action domain.AuditAction, changes map[string]any)

	calls struct {
		Record []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   *uuid.UUID
			Action     domain.AuditAction
			Changes    map[string]any
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, entityType domain.EntityType, entityID *uuid.UUID, action domain.AuditAction, changes map[string]any) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   *uuid.UUID
		Action     domain.AuditAction
		Changes    map[string]any
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Action: action, Changes: changes}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, entityType, entityID, action, changes)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   *uuid.UUID
	Action     domain.AuditAction
	Changes    map[string]any
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
