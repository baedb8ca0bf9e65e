package models

import "time"

func (b *BaseModel) GetID() uint { return b.ID }

func (b *BaseModel) SetID(id uint) { b.ID = id }

// Stamp sets the record timestamps the way the ORM would on create/save.
func (b *BaseModel) Stamp(t time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = t
	}
	b.UpdatedAt = t
}
