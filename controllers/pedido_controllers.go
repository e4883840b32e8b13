package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/models"
	"github.com/zahub/admin-api/services"
	"github.com/zahub/admin-api/utils"
)

const (
	pedidosPorPagina      = 9
	pedidosPorPaginaChica = 6 // variante para pantallas pequeñas
)

type PedidoController struct {
	DB     *gorm.DB
	Estado *services.EstadoService
}

func NewPedidoController(db *gorm.DB) *PedidoController {
	return &PedidoController{
		DB:     db,
		Estado: services.NewEstadoService(db),
	}
}

// GetAllPedidos carga el snapshot completo de pedidos y aplica búsqueda,
// filtro por estado y paginación en memoria, igual que lo hacía el panel.
func (pc *PedidoController) GetAllPedidos(c *gin.Context) {
	var pedidos []models.Pedido
	if err := pc.DB.Preload("Cliente").
		Order("created_at desc").
		Find(&pedidos).Error; err != nil {
		utils.ErrorLogger.Printf("Error cargando pedidos: %v", err)
		utils.RespondJSON(c, http.StatusInternalServerError, "No se pudieron cargar los pedidos.", []models.Pedido{})
		return
	}

	filtroEstado := c.DefaultQuery("estado", "TODOS")
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	filtrados := make([]models.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if filtroEstado != "TODOS" && p.Estado != filtroEstado {
			continue
		}
		if q != "" {
			nombre := ""
			if p.Cliente != nil {
				nombre = strings.ToLower(p.Cliente.Nombre)
			}
			id := strings.ToLower(p.ID)
			direccion := strings.ToLower(p.DireccionEntrega)
			if !strings.Contains(id, q) && !strings.Contains(nombre, q) && !strings.Contains(direccion, q) {
				continue
			}
		}
		filtrados = append(filtrados, p)
	}

	porPagina := pedidosPorPagina
	if pp, err := strconv.Atoi(c.Query("per_page")); err == nil && pp == pedidosPorPaginaChica {
		porPagina = pedidosPorPaginaChica
	}

	pagina, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	meta, inicio, fin := utils.Paginar(len(filtrados), pagina, porPagina)

	utils.RespondJSON(c, http.StatusOK, "Lista de pedidos", gin.H{
		"pedidos":    filtrados[inicio:fin],
		"paginacion": meta,
	})
}

// GetPedidoByID devuelve un pedido con cliente, ítems e historial de estados.
func (pc *PedidoController) GetPedidoByID(c *gin.Context) {
	id := c.Param("pedido_id")

	var pedido models.Pedido
	if err := pc.DB.Preload("Cliente").First(&pedido, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("No se pudo cargar el detalle del pedido."))
		return
	}

	var items []models.PedidoItem
	if err := pc.DB.Preload("PizzaBase").
		Where("pedido_id = ?", id).
		Order("id asc").
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var historial []models.HistorialEstadoPedido
	if err := pc.DB.Preload("CambiadoPor").
		Where("pedido_id = ?", id).
		Order("created_at asc").
		Find(&historial).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Detalle del pedido", gin.H{
		"pedido":    pedido,
		"items":     items,
		"historial": historial,
	})
}

// CambiarEstado ejecuta la secuencia de dos escrituras (pedido + historial)
// y expone el desenlace para que cada pantalla reconcilie su vista.
func (pc *PedidoController) CambiarEstado(c *gin.Context) {
	id := c.Param("pedido_id")

	var req struct {
		Estado     string `json:"estado" binding:"required"`
		Comentario string `json:"comentario"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.EsEstadoValido(req.Estado) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("estado no válido: "+req.Estado))
		return
	}

	var pedido models.Pedido
	if err := pc.DB.First(&pedido, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("pedido no encontrado"))
		return
	}

	var actorID *string
	if v, ok := c.Get("usuario_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			actorID = &s
		}
	}

	resultado, err := pc.Estado.CambiarEstado(&pedido, req.Estado, actorID, req.Comentario)
	switch resultado {
	case services.SinCambio:
		utils.RespondJSON(c, http.StatusOK, "El pedido ya estaba en ese estado", gin.H{
			"resultado": resultado.String(),
			"estado":    pedido.Estado,
		})
	case services.Completo:
		// Releer la verdad de la base, como hacía la pantalla de detalle
		pc.DB.First(&pedido, "id = ?", id)
		utils.InfoLogger.Printf("Pedido %s -> %s", pedido.ID, pedido.Estado)
		utils.RespondJSON(c, http.StatusOK, "Estado actualizado", gin.H{
			"resultado": resultado.String(),
			"pedido":    pedido,
		})
	case services.Parcial:
		utils.ErrorLogger.Printf("Cambio parcial en pedido %s: %v", pedido.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    false,
			"message":   "No se pudo actualizar el estado del pedido.",
			"resultado": resultado.String(),
			"estado":    pedido.Estado,
		})
	default:
		utils.ErrorLogger.Printf("Cambio fallido en pedido %s: %v", pedido.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    false,
			"message":   "No se pudo cambiar el estado. Se revertirá.",
			"resultado": resultado.String(),
			"estado":    pedido.Estado,
		})
	}
}

// CrearPedidoDePrueba inserta el pedido demo del panel.
func (pc *PedidoController) CrearPedidoDePrueba(c *gin.Context) {
	var req struct {
		ClienteID string `json:"cliente_id"`
	}
	// Body opcional
	_ = c.ShouldBindJSON(&req)

	clienteID := req.ClienteID
	if clienteID == "" {
		var cliente models.Usuario
		if err := pc.DB.Where("rol = ?", models.RolCliente).
			Order("created_at asc").
			First(&cliente).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("no hay clientes registrados para el pedido de prueba"))
			return
		}
		clienteID = cliente.ID
	}

	pedido := models.Pedido{
		ClienteID:        clienteID,
		Estado:           models.EstadoPendiente,
		Total:            25000,
		MetodoPago:       "EFECTIVO",
		DireccionEntrega: "Cra 50 #20-15",
		Canal:            "APP_MOBILE",
	}

	if err := pc.DB.Create(&pedido).Error; err != nil {
		utils.ErrorLogger.Printf("Error creando pedido de prueba: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Error al crear pedido."))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Pedido de prueba creado", pedido)
}
