package models

import "time"

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Category    Category  `gorm:"not null" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	Date        time.Time `gorm:"not null" json:"date"`
	Description string    `json:"description,omitempty"`
	PersonID    uint      `gorm:"not null;index" json:"personId"`
}

func (Expense) TableName() string {
	return "expenses"
}
