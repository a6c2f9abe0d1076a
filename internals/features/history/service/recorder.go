package service

import (
	"fmt"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/history/model"
)

// Snapshot serializes an entity state for the audit trail. Returns nil for a
// nil state (no previous value on create, no new value on delete).
func Snapshot(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("snapshot %T: %w", v, err)
	}
	s := string(b)
	return &s, nil
}

// Record appends exactly one history row for a mutation. Callers pass the tx
// of the surrounding write so the entity and its audit row commit together;
// a snapshot that fails to serialize aborts the whole write rather than
// leaving a row with a hole in it.
func Record(tx *gorm.DB, entityType, entityID, action, modifiedBy string, previous, next any) error {
	prev, err := Snapshot(previous)
	if err != nil {
		return err
	}
	curr, err := Snapshot(next)
	if err != nil {
		return err
	}
	entry := model.ModificationHistoryModel{
		EntityType:    entityType,
		EntityID:      entityID,
		Action:        action,
		ModifiedBy:    modifiedBy,
		PreviousValue: prev,
		NewValue:      curr,
	}
	return tx.Create(&entry).Error
}
