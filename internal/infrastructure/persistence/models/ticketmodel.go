package models

import "time"

// TicketModel references users and categories by plain ID columns.
// Referential rules are enforced in the application layer, not by
// database constraints.
type TicketModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text;not null"`
	Status      string  `gorm:"size:20;not null;default:'open';index"`
	Priority    string  `gorm:"size:10;not null;default:'MEDIUM'"`
	CreatedBy   uint    `gorm:"not null;index"`
	CategoryID  uint    `gorm:"not null;index"`
	Response    *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}
