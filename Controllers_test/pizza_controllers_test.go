package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/controllers"
	"github.com/zahub/admin-api/models"
	"github.com/zahub/admin-api/utils"
)

func setupPizzaRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	pizzaCtrl := controllers.NewPizzaController(db)
	r.GET("/admin/pizzas", pizzaCtrl.GetAllPizzas)
	r.POST("/admin/pizzas", pizzaCtrl.CreatePizza)
	r.PATCH("/admin/pizzas/:pizza_id", pizzaCtrl.UpdatePizza)
	r.PATCH("/admin/pizzas/:pizza_id/activa", pizzaCtrl.ToggleActiva)
	r.DELETE("/admin/pizzas/:pizza_id", pizzaCtrl.DeletePizza)
	return r
}

func TestCreatePizzaNombreVacioNoEscribe(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupPizzaRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/pizzas", map[string]interface{}{
		"nombre":      "   ",
		"precio_base": 20000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "El nombre es obligatorio.", resp["message"])

	// Nunca llegó a la base
	var count int64
	db.Model(&models.PizzaBase{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreatePizzaPrecioComoCadena(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupPizzaRouter(db)

	// El formulario manda el precio como texto; vacío se toma como 0
	w := doJSON(t, r, http.MethodPost, "/admin/pizzas", map[string]interface{}{
		"nombre":      "Margarita",
		"tamano":      models.TamanoPersonal,
		"precio_base": "18500",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var pizza models.PizzaBase
	assert.NoError(t, db.First(&pizza, "nombre = ?", "Margarita").Error)
	assert.Equal(t, 18500.0, pizza.PrecioBase)
	assert.True(t, pizza.Activa)

	w = doJSON(t, r, http.MethodPost, "/admin/pizzas", map[string]interface{}{
		"nombre":      "Napolitana",
		"precio_base": "",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, db.First(&pizza, "nombre = ?", "Napolitana").Error)
	assert.Equal(t, 0.0, pizza.PrecioBase)
	// Sin tamaño explícito queda MEDIANA
	assert.Equal(t, models.TamanoMediana, pizza.Tamano)
}

func TestUpdateYTogglePizza(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	pizza := models.PizzaBase{Nombre: "Pepperoni", Tamano: models.TamanoMediana, PrecioBase: 28000, Activa: true}
	db.Create(&pizza)

	r := setupPizzaRouter(db)

	w := doJSON(t, r, http.MethodPatch, "/admin/pizzas/"+pizza.ID, map[string]interface{}{
		"nombre":      "Pepperoni Especial",
		"tamano":      models.TamanoFamiliar,
		"precio_base": 35000,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var guardada models.PizzaBase
	db.First(&guardada, "id = ?", pizza.ID)
	assert.Equal(t, "Pepperoni Especial", guardada.Nombre)
	assert.Equal(t, models.TamanoFamiliar, guardada.Tamano)
	assert.Equal(t, 35000.0, guardada.PrecioBase)

	w = doJSON(t, r, http.MethodPatch, "/admin/pizzas/"+pizza.ID+"/activa", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	db.First(&guardada, "id = ?", pizza.ID)
	assert.False(t, guardada.Activa)
}

func TestDeletePizza(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	pizza := models.PizzaBase{Nombre: "Cuatro Quesos", Activa: true}
	db.Create(&pizza)

	r := setupPizzaRouter(db)

	w := doJSON(t, r, http.MethodDelete, "/admin/pizzas/"+pizza.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.PizzaBase{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetAllPizzasFiltros(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	db.Create(&models.PizzaBase{Nombre: "Margarita", Tamano: models.TamanoPersonal, Activa: true})
	db.Create(&models.PizzaBase{Nombre: "Hawaiana", Tamano: models.TamanoFamiliar, Activa: true})
	db.Create(&models.PizzaBase{Nombre: "Vegetariana", Descripcion: "Con champiñones", Tamano: models.TamanoFamiliar, Activa: false})

	r := setupPizzaRouter(db)

	w := doJSON(t, r, http.MethodGet, "/admin/pizzas?tamano=FAMILIAR", nil)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["pizzas"].([]interface{}), 2)

	w = doJSON(t, r, http.MethodGet, "/admin/pizzas?tamano=FAMILIAR&estado=ACTIVAS", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Len(t, data["pizzas"].([]interface{}), 1)

	// La búsqueda también mira la descripción
	w = doJSON(t, r, http.MethodGet, "/admin/pizzas?q=champi", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Len(t, data["pizzas"].([]interface{}), 1)
}
