package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TamanoPersonal = "PERSONAL"
	TamanoMediana  = "MEDIANA"
	TamanoFamiliar = "FAMILIAR"
)

var Tamanos = []string{TamanoPersonal, TamanoMediana, TamanoFamiliar}

func EsTamanoValido(tamano string) bool {
	for _, t := range Tamanos {
		if t == tamano {
			return true
		}
	}
	return false
}

type PizzaBase struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nombre      string    `gorm:"type:varchar(255);not null" json:"nombre"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	Tamano      string    `gorm:"type:varchar(20);not null;default:'MEDIANA'" json:"tamano"`
	PrecioBase  float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"precio_base"`
	Activa      bool      `gorm:"not null;default:true" json:"activa"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (PizzaBase) TableName() string {
	return "pizzas_base"
}

func (p *PizzaBase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
