package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ingrediente struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nombre      string    `gorm:"type:varchar(255);not null" json:"nombre"`
	Categoria   string    `gorm:"type:varchar(100)" json:"categoria"`
	PrecioExtra float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"precio_extra"`
	Activo      bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Ingrediente) TableName() string {
	return "ingredientes"
}

func (i *Ingrediente) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
