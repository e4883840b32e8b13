package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/models"
	"github.com/zahub/admin-api/utils"
)

// ventanaDashboard: las métricas del panel se calculan sobre los 20 pedidos
// más recientes, no sobre toda la tabla. Es una aproximación deliberada.
const ventanaDashboard = 20

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats trae los 20 pedidos más recientes y el conteo de usuarios, y
// deriva las métricas de la ventana.
func (dc *DashboardController) GetStats(c *gin.Context) {
	rol, _ := c.Get("rol")
	if rol != models.RolAdmin {
		utils.RespondError(c, http.StatusForbidden, ErrSinPermiso)
		return
	}

	var pedidos []models.Pedido
	if err := dc.DB.Preload("Cliente").
		Order("created_at desc").
		Limit(ventanaDashboard).
		Find(&pedidos).Error; err != nil {
		utils.ErrorLogger.Printf("Error cargando dashboard: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("No se pudo cargar el dashboard."))
		return
	}

	var totalUsuarios int64
	if err := dc.DB.Model(&models.Usuario{}).Count(&totalUsuarios).Error; err != nil {
		utils.ErrorLogger.Printf("Error contando usuarios: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("No se pudo cargar el dashboard."))
		return
	}

	var totalIngresos float64
	var pendientes, enCamino, horneando int
	for _, p := range pedidos {
		totalIngresos += p.Total
		switch p.Estado {
		case models.EstadoPendiente:
			pendientes++
		case models.EstadoEnCamino:
			enCamino++
		case models.EstadoHorneando:
			horneando++
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Métricas del panel", gin.H{
		"total_pedidos":  len(pedidos),
		"total_ingresos": totalIngresos,
		"pendientes":     pendientes,
		"en_camino":      enCamino,
		"horneando":      horneando,
		"total_usuarios": totalUsuarios,
		"pedidos":        pedidos,
	})
}

// ExportPedidos entrega todos los pedidos como CSV para descarga.
func (dc *DashboardController) ExportPedidos(c *gin.Context) {
	rol, _ := c.Get("rol")
	if rol != models.RolAdmin {
		utils.RespondError(c, http.StatusForbidden, ErrSinPermiso)
		return
	}

	var pedidos []models.Pedido
	if err := dc.DB.Preload("Cliente").
		Order("created_at desc").
		Find(&pedidos).Error; err != nil {
		utils.ErrorLogger.Printf("Error exportando pedidos: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("No se pudo exportar el reporte."))
		return
	}

	filename := fmt.Sprintf("pedidos-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "cliente", "estado", "total", "metodo_pago", "direccion_entrega", "canal", "fecha"})

	for _, p := range pedidos {
		nombre := ""
		if p.Cliente != nil {
			nombre = p.Cliente.Nombre
		}
		_ = w.Write([]string{
			p.ID,
			nombre,
			p.Estado,
			utils.FormatCOP(p.Total),
			p.MetodoPago,
			p.DireccionEntrega,
			p.Canal,
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
}
