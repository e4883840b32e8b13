package models

import (
	"time"
)

// HistorialEstadoPedido es un log append-only: nunca se actualiza ni se borra
// desde este servicio.
type HistorialEstadoPedido struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PedidoID      string    `gorm:"type:varchar(36);not null;index" json:"pedido_id"`
	Pedido        Pedido    `gorm:"foreignKey:PedidoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Estado        string    `gorm:"type:varchar(20);not null" json:"estado"`
	Comentario    string    `gorm:"type:text" json:"comentario"`
	CambiadoPorID *string   `gorm:"type:varchar(36);index" json:"cambiado_por_id,omitempty"`
	CambiadoPor   *Usuario  `gorm:"foreignKey:CambiadoPorID" json:"cambiado_por,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (HistorialEstadoPedido) TableName() string {
	return "historial_estado_pedido"
}
