package models

import (
	"time"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
)

// TimestampModel is the GORM database model for timestamp history entries
// (infrastructure concern)
type TimestampModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	Token      string    `gorm:"not null;type:text"`
	Authority  string    `gorm:"not null;index;type:varchar(255)"`
	DataPrefix string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TimestampModel) TableName() string {
	return "timestamp_entries"
}

// ToDomain converts GORM model to domain entity
func (m *TimestampModel) ToDomain() *timestamps.TimestampEntry {
	return &timestamps.TimestampEntry{
		ID:         m.ID,
		Token:      m.Token,
		Authority:  m.Authority,
		DataPrefix: m.DataPrefix,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TimestampModel) FromDomain(e *timestamps.TimestampEntry) {
	m.ID = e.ID
	m.Token = e.Token
	m.Authority = e.Authority
	m.DataPrefix = e.DataPrefix
	m.CreatedAt = e.CreatedAt
}
