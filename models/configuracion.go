package models

import (
	"time"
)

const (
	TemaClaro  = "light"
	TemaOscuro = "dark"
)

// ConfiguracionUsuario guarda las preferencias del panel por usuario,
// incluido el tema. Se crea con valores por defecto en la primera lectura.
type ConfiguracionUsuario struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	UsuarioID      string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"usuario_id"`
	Usuario        Usuario   `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
	EmailPedidos   bool      `gorm:"not null;default:true" json:"email_pedidos"`
	EmailNovedades bool      `gorm:"not null;default:false" json:"email_novedades"`
	PushEstado     bool      `gorm:"not null;default:true" json:"push_estado"`
	TwoFactor      bool      `gorm:"not null;default:false" json:"two_factor"`
	Idioma         string    `gorm:"type:varchar(10);not null;default:'es'" json:"idioma"`
	Tema           string    `gorm:"type:varchar(10);not null;default:'light'" json:"tema"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

func (ConfiguracionUsuario) TableName() string {
	return "configuracion_usuario"
}

func ConfiguracionPorDefecto(usuarioID string) ConfiguracionUsuario {
	return ConfiguracionUsuario{
		UsuarioID:      usuarioID,
		EmailPedidos:   true,
		EmailNovedades: false,
		PushEstado:     true,
		TwoFactor:      false,
		Idioma:         "es",
		Tema:           TemaClaro,
	}
}
