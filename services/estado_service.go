package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/zahub/admin-api/models"
)

// ResultadoCambio etiqueta el desenlace del cambio de estado en dos fases.
type ResultadoCambio int

const (
	// SinCambio: el estado pedido es igual al actual, no se escribió nada.
	SinCambio ResultadoCambio = iota
	// Completo: se actualizó el pedido y se registró el historial.
	Completo
	// Parcial: el pedido quedó actualizado pero el historial no se pudo
	// registrar. La fase 1 NO se revierte: el estado queda adelantado
	// respecto a su propio historial.
	Parcial
	// Fallido: la actualización del pedido falló; no se tocó el historial.
	Fallido
)

func (r ResultadoCambio) String() string {
	switch r {
	case SinCambio:
		return "sin_cambio"
	case Completo:
		return "completo"
	case Parcial:
		return "parcial"
	case Fallido:
		return "fallido"
	}
	return "desconocido"
}

type EstadoService struct {
	DB *gorm.DB
}

func NewEstadoService(db *gorm.DB) *EstadoService {
	return &EstadoService{DB: db}
}

// CambiarEstado ejecuta la secuencia de dos escrituras del panel:
//  1. UPDATE pedidos SET estado = ? WHERE id = ?
//  2. INSERT en historial_estado_pedido
//
// Las dos escrituras no son atómicas. Quien llama decide cómo reconciliar
// su vista según el ResultadoCambio.
func (s *EstadoService) CambiarEstado(pedido *models.Pedido, nuevoEstado string, actorID *string, comentario string) (ResultadoCambio, error) {
	if nuevoEstado == pedido.Estado {
		return SinCambio, nil
	}

	if err := s.DB.Model(&models.Pedido{}).
		Where("id = ?", pedido.ID).
		Update("estado", nuevoEstado).Error; err != nil {
		return Fallido, fmt.Errorf("no se pudo actualizar el estado del pedido: %w", err)
	}

	if comentario == "" {
		comentario = fmt.Sprintf("Estado actualizado a %s desde el panel admin.", nuevoEstado)
	}

	historial := models.HistorialEstadoPedido{
		PedidoID:      pedido.ID,
		Estado:        nuevoEstado,
		Comentario:    comentario,
		CambiadoPorID: actorID,
	}
	if err := s.DB.Create(&historial).Error; err != nil {
		// El pedido ya quedó en el nuevo estado; ventana de inconsistencia
		// conocida, se reporta en vez de ocultarse.
		pedido.Estado = nuevoEstado
		return Parcial, fmt.Errorf("estado actualizado pero no se pudo registrar el historial: %w", err)
	}

	pedido.Estado = nuevoEstado
	return Completo, nil
}
