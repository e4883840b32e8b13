package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estados de pedido (mismo set de la plataforma, cualquier transición es válida)
const (
	EstadoPendiente  = "PENDIENTE"
	EstadoPreparando = "PREPARANDO"
	EstadoHorneando  = "HORNEANDO"
	EstadoListo      = "LISTO"
	EstadoEnCamino   = "EN_CAMINO"
	EstadoEntregado  = "ENTREGADO"
	EstadoCancelado  = "CANCELADO"
)

var Estados = []string{
	EstadoPendiente,
	EstadoPreparando,
	EstadoHorneando,
	EstadoListo,
	EstadoEnCamino,
	EstadoEntregado,
	EstadoCancelado,
}

func EsEstadoValido(estado string) bool {
	for _, e := range Estados {
		if e == estado {
			return true
		}
	}
	return false
}

type Pedido struct {
	ID               string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClienteID        string       `gorm:"type:varchar(36);not null;index" json:"cliente_id"`
	Cliente          *Usuario     `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Estado           string       `gorm:"type:varchar(20);not null;default:'PENDIENTE'" json:"estado"`
	Total            float64      `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	MetodoPago       string       `gorm:"type:varchar(30)" json:"metodo_pago"`
	DireccionEntrega string       `gorm:"type:varchar(255)" json:"direccion_entrega"`
	Canal            string       `gorm:"type:varchar(30)" json:"canal"`
	CreatedAt        time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null" json:"updated_at"`
	Items            []PedidoItem `gorm:"foreignKey:PedidoID" json:"items,omitempty"`
}

func (Pedido) TableName() string {
	return "pedidos"
}

func (p *Pedido) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
