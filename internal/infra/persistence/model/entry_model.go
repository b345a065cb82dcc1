package model

import (
	"time"

	"github.com/google/uuid"

	"journal/internal/domain/entity"
)

// EntryModel mirrors the 'entries' table.
type EntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Mood      string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "entries"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *EntryModel) ToDomain() *entity.Entry {
	return &entity.Entry{
		ID:        m.ID,
		UserID:    m.UserID,
		Text:      m.Text,
		Mood:      entity.Mood(m.Mood),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EntryModelFromDomain maps a domain entity to its persistence model.
func EntryModelFromDomain(entry *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Text:      entry.Text,
		Mood:      string(entry.Mood),
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
