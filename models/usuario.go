package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RolAdmin      = "ADMIN"
	RolCajero     = "CAJERO"
	RolCocina     = "COCINA"
	RolRepartidor = "REPARTIDOR"
	RolCliente    = "CLIENTE"
)

var Roles = []string{RolAdmin, RolCajero, RolCocina, RolRepartidor, RolCliente}

func EsRolValido(rol string) bool {
	for _, r := range Roles {
		if r == rol {
			return true
		}
	}
	return false
}

type Usuario struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nombre    string    `gorm:"type:varchar(255);not null" json:"nombre"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Telefono  string    `gorm:"type:varchar(30)" json:"telefono"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Rol       string    `gorm:"type:varchar(20);not null;default:'CLIENTE'" json:"rol"`
	Activo    bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Usuario) TableName() string {
	return "usuarios_app"
}

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
