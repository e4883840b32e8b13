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

const pizzasPorPagina = 10

type PizzaController struct {
	DB *gorm.DB
}

func NewPizzaController(db *gorm.DB) *PizzaController {
	return &PizzaController{DB: db}
}

// GetAllPizzas: snapshot ordenado por nombre, búsqueda en nombre y
// descripción, filtros de tamaño y estado.
func (pc *PizzaController) GetAllPizzas(c *gin.Context) {
	var pizzas []models.PizzaBase
	if err := pc.DB.Order("nombre asc").Find(&pizzas).Error; err != nil {
		utils.ErrorLogger.Printf("Error cargando pizzas: %v", err)
		utils.RespondJSON(c, http.StatusInternalServerError, "No se pudieron cargar las pizzas.", []models.PizzaBase{})
		return
	}

	filtroTamano := c.DefaultQuery("tamano", "TODOS")
	filtroEstado := c.DefaultQuery("estado", "TODAS")
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	filtradas := make([]models.PizzaBase, 0, len(pizzas))
	for _, pz := range pizzas {
		tamano := pz.Tamano
		if tamano == "" {
			tamano = models.TamanoMediana
		}
		if filtroTamano != "TODOS" && tamano != filtroTamano {
			continue
		}
		if filtroEstado == "ACTIVAS" && !pz.Activa {
			continue
		}
		if filtroEstado == "INACTIVAS" && pz.Activa {
			continue
		}
		if q != "" {
			nombre := strings.ToLower(pz.Nombre)
			desc := strings.ToLower(pz.Descripcion)
			if !strings.Contains(nombre, q) && !strings.Contains(desc, q) {
				continue
			}
		}
		filtradas = append(filtradas, pz)
	}

	pagina, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	meta, inicio, fin := utils.Paginar(len(filtradas), pagina, pizzasPorPagina)

	utils.RespondJSON(c, http.StatusOK, "Lista de pizzas", gin.H{
		"pizzas":     filtradas[inicio:fin],
		"paginacion": meta,
	})
}

type pizzaForm struct {
	Nombre      string       `json:"nombre"`
	Descripcion string       `json:"descripcion"`
	Tamano      string       `json:"tamano"`
	PrecioBase  utils.Precio `json:"precio_base"`
}

func (f *pizzaForm) validar() error {
	f.Nombre = strings.TrimSpace(f.Nombre)
	if f.Nombre == "" {
		return ErrNombreObligatorio
	}
	f.Descripcion = strings.TrimSpace(f.Descripcion)
	if f.Tamano == "" {
		f.Tamano = models.TamanoMediana
	}
	if !models.EsTamanoValido(f.Tamano) {
		return errors.New("tamaño no válido: " + f.Tamano)
	}
	return nil
}

// CreatePizza valida el formulario y crea la pizza activa
func (pc *PizzaController) CreatePizza(c *gin.Context) {
	var form pizzaForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := form.validar(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	pizza := models.PizzaBase{
		Nombre:      form.Nombre,
		Descripcion: form.Descripcion,
		Tamano:      form.Tamano,
		PrecioBase:  form.PrecioBase.Float64(),
		Activa:      true,
	}

	if err := pc.DB.Create(&pizza).Error; err != nil {
		utils.ErrorLogger.Printf("Error guardando pizza: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo guardar la pizza."))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Pizza creada", pizza)
}

// UpdatePizza edita nombre, descripción, tamaño y precio base
func (pc *PizzaController) UpdatePizza(c *gin.Context) {
	id := c.Param("pizza_id")

	var pizza models.PizzaBase
	if err := pc.DB.First(&pizza, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("pizza no encontrada"))
		return
	}

	var form pizzaForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := form.validar(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{
		"nombre":      form.Nombre,
		"descripcion": form.Descripcion,
		"tamano":      form.Tamano,
		"precio_base": form.PrecioBase.Float64(),
	}
	if err := pc.DB.Model(&pizza).Updates(updates).Error; err != nil {
		utils.ErrorLogger.Printf("Error guardando pizza %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo guardar la pizza."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pizza actualizada", pizza)
}

// ToggleActiva invierte la marca activa
func (pc *PizzaController) ToggleActiva(c *gin.Context) {
	id := c.Param("pizza_id")

	var pizza models.PizzaBase
	if err := pc.DB.First(&pizza, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("pizza no encontrada"))
		return
	}

	nuevaActiva := !pizza.Activa
	if err := pc.DB.Model(&pizza).Update("activa", nuevaActiva).Error; err != nil {
		utils.ErrorLogger.Printf("Error actualizando pizza %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo actualizar la pizza."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pizza actualizada", gin.H{
		"pizza_id": pizza.ID,
		"activa":   nuevaActiva,
	})
}

// DeletePizza borra por id; el cliente vuelve a pedir la lista
func (pc *PizzaController) DeletePizza(c *gin.Context) {
	id := c.Param("pizza_id")

	if err := pc.DB.Delete(&models.PizzaBase{}, "id = ?", id).Error; err != nil {
		utils.ErrorLogger.Printf("Error eliminando pizza %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo eliminar la pizza."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pizza eliminada", gin.H{"pizza_id": id})
}
