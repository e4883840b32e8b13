package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/models"
	"github.com/zahub/admin-api/utils"
)

const ingredientesPorPagina = 10

type IngredienteController struct {
	DB *gorm.DB
}

func NewIngredienteController(db *gorm.DB) *IngredienteController {
	return &IngredienteController{DB: db}
}

// GetAllIngredientes: snapshot ordenado por nombre con búsqueda por nombre
// y filtros de precio (CON_EXTRA es estrictamente precio_extra > 0),
// categoría exacta y estado.
func (ic *IngredienteController) GetAllIngredientes(c *gin.Context) {
	var ingredientes []models.Ingrediente
	if err := ic.DB.Order("nombre asc").Find(&ingredientes).Error; err != nil {
		utils.ErrorLogger.Printf("Error cargando ingredientes: %v", err)
		utils.RespondJSON(c, http.StatusInternalServerError, "No se pudieron cargar los ingredientes.", []models.Ingrediente{})
		return
	}

	filtroPrecio := c.DefaultQuery("precio", "TODOS")
	filtroCategoria := c.DefaultQuery("categoria", "TODAS")
	filtroEstado := c.DefaultQuery("estado", "TODOS")
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	filtrados := make([]models.Ingrediente, 0, len(ingredientes))
	for _, ing := range ingredientes {
		if filtroPrecio == "CON_EXTRA" && !(ing.PrecioExtra > 0) {
			continue
		}
		if filtroPrecio == "SIN_EXTRA" && ing.PrecioExtra != 0 {
			continue
		}
		if filtroCategoria != "TODAS" && ing.Categoria != filtroCategoria {
			continue
		}
		if filtroEstado == "ACTIVOS" && !ing.Activo {
			continue
		}
		if filtroEstado == "INACTIVOS" && ing.Activo {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(ing.Nombre), q) {
			continue
		}
		filtrados = append(filtrados, ing)
	}

	pagina, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	meta, inicio, fin := utils.Paginar(len(filtrados), pagina, ingredientesPorPagina)

	utils.RespondJSON(c, http.StatusOK, "Lista de ingredientes", gin.H{
		"ingredientes": filtrados[inicio:fin],
		"paginacion":   meta,
	})
}

type ingredienteForm struct {
	Nombre      string       `json:"nombre"`
	Categoria   string       `json:"categoria"`
	PrecioExtra utils.Precio `json:"precio_extra"`
}

func (f *ingredienteForm) validar() error {
	f.Nombre = strings.TrimSpace(f.Nombre)
	if f.Nombre == "" {
		return ErrNombreObligatorio
	}
	f.Categoria = strings.TrimSpace(f.Categoria)
	return nil
}

// CreateIngrediente valida el formulario y crea el ingrediente activo
func (ic *IngredienteController) CreateIngrediente(c *gin.Context) {
	var form ingredienteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := form.validar(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ingrediente := models.Ingrediente{
		Nombre:      form.Nombre,
		Categoria:   form.Categoria,
		PrecioExtra: form.PrecioExtra.Float64(),
		Activo:      true,
	}

	if err := ic.DB.Create(&ingrediente).Error; err != nil {
		utils.ErrorLogger.Printf("Error guardando ingrediente: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo guardar el ingrediente."))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Ingrediente creado", ingrediente)
}

// UpdateIngrediente edita nombre, categoría y precio extra
func (ic *IngredienteController) UpdateIngrediente(c *gin.Context) {
	id := c.Param("ingrediente_id")

	var ingrediente models.Ingrediente
	if err := ic.DB.First(&ingrediente, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("ingrediente no encontrado"))
		return
	}

	var form ingredienteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := form.validar(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{
		"nombre":       form.Nombre,
		"categoria":    form.Categoria,
		"precio_extra": form.PrecioExtra.Float64(),
	}
	if err := ic.DB.Model(&ingrediente).Updates(updates).Error; err != nil {
		utils.ErrorLogger.Printf("Error guardando ingrediente %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo guardar el ingrediente."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Ingrediente actualizado", ingrediente)
}

// ToggleActivo invierte la marca activo
func (ic *IngredienteController) ToggleActivo(c *gin.Context) {
	id := c.Param("ingrediente_id")

	var ingrediente models.Ingrediente
	if err := ic.DB.First(&ingrediente, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("ingrediente no encontrado"))
		return
	}

	nuevoActivo := !ingrediente.Activo
	if err := ic.DB.Model(&ingrediente).Update("activo", nuevoActivo).Error; err != nil {
		utils.ErrorLogger.Printf("Error actualizando ingrediente %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo actualizar el ingrediente."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Ingrediente actualizado", gin.H{
		"ingrediente_id": ingrediente.ID,
		"activo":         nuevoActivo,
	})
}

// DeleteIngrediente borra por id
func (ic *IngredienteController) DeleteIngrediente(c *gin.Context) {
	id := c.Param("ingrediente_id")

	if err := ic.DB.Delete(&models.Ingrediente{}, "id = ?", id).Error; err != nil {
		utils.ErrorLogger.Printf("Error eliminando ingrediente %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo eliminar el ingrediente."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Ingrediente eliminado", gin.H{"ingrediente_id": id})
}
