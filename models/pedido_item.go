package models

import (
	"time"
)

type PedidoItem struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PedidoID       string     `gorm:"type:varchar(36);not null;index" json:"pedido_id"`
	Pedido         Pedido     `gorm:"foreignKey:PedidoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	PizzaBaseID    string     `gorm:"type:varchar(36);not null" json:"pizza_base_id"`
	PizzaBase      *PizzaBase `gorm:"foreignKey:PizzaBaseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"pizza_base,omitempty"`
	Cantidad       int        `gorm:"not null" json:"cantidad"`
	PrecioUnitario float64    `gorm:"type:decimal(10,2);not null" json:"precio_unitario"`
	Subtotal       float64    `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
}

func (PedidoItem) TableName() string {
	return "pedido_items"
}
