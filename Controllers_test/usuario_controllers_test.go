package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/controllers"
	"github.com/zahub/admin-api/middlewares"
	"github.com/zahub/admin-api/models"
	"github.com/zahub/admin-api/utils"
)

func setupUsuarioRouter(db *gorm.DB, rol string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	usuarioCtrl := controllers.NewUsuarioController(db)
	r.POST("/register", usuarioCtrl.Register)
	r.POST("/login", usuarioCtrl.Login)

	auth := r.Group("/admin")
	auth.Use(func(c *gin.Context) {
		c.Set("usuario_id", "test-actor")
		c.Set("rol", rol)
		c.Next()
	})
	auth.GET("/usuarios", usuarioCtrl.GetAllUsuarios)
	soloAdmin := middlewares.RequireRol(models.RolAdmin)
	auth.PATCH("/usuarios/:usuario_id/activo", soloAdmin, usuarioCtrl.ToggleActivo)
	auth.PATCH("/usuarios/:usuario_id/rol", soloAdmin, usuarioCtrl.CambiarRol)
	return r
}

func TestRegisterYLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupUsuarioRouter(db, models.RolAdmin)

	w := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"nombre":   "Valentina",
		"email":    "valentina@zahub.test",
		"password": "secreto123",
		"rol":      models.RolAdmin,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["status"])

	w = doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"email":    "valentina@zahub.test",
		"password": "secreto123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	perfil := data["perfil"].(map[string]interface{})
	assert.Equal(t, "Valentina", perfil["nombre"])
	assert.Equal(t, models.RolAdmin, perfil["rol"])
}

func TestRegisterRolInvalido(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupUsuarioRouter(db, models.RolAdmin)

	w := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"nombre":   "X",
		"email":    "x@zahub.test",
		"password": "pw",
		"rol":      "SUPERADMIN",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Usuario{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLoginUsuarioInactivoRechazado(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	db.Create(&models.Usuario{
		Nombre:   "Apagado",
		Email:    "apagado@zahub.test",
		Password: string(hash),
		Rol:      models.RolCajero,
		Activo:   false,
	})

	r := setupUsuarioRouter(db, models.RolAdmin)
	w := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"email":    "apagado@zahub.test",
		"password": "pw123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAllUsuariosFiltros(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	for i := 0; i < 4; i++ {
		db.Create(&models.Usuario{
			Nombre:   fmt.Sprintf("Cajero %d", i),
			Email:    fmt.Sprintf("cajero%d@zahub.test", i),
			Password: "x",
			Rol:      models.RolCajero,
			Activo:   i%2 == 0,
		})
	}
	db.Create(&models.Usuario{
		Nombre:   "Mario Repartidor",
		Email:    "mario@zahub.test",
		Password: "x",
		Rol:      models.RolRepartidor,
		Activo:   true,
	})

	r := setupUsuarioRouter(db, models.RolAdmin)

	w := doJSON(t, r, http.MethodGet, "/admin/usuarios?rol=CAJERO", nil)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["usuarios"].([]interface{}), 4)

	w = doJSON(t, r, http.MethodGet, "/admin/usuarios?rol=CAJERO&estado=ACTIVOS", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Len(t, data["usuarios"].([]interface{}), 2)

	// Búsqueda por nombre, insensible a mayúsculas
	w = doJSON(t, r, http.MethodGet, "/admin/usuarios?q=MARIO", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Len(t, data["usuarios"].([]interface{}), 1)
}

func TestToggleActivoYCambiarRol(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	usuario := models.Usuario{
		Nombre:   "Pedro",
		Email:    "pedro@zahub.test",
		Password: "x",
		Rol:      models.RolCliente,
		Activo:   true,
	}
	db.Create(&usuario)

	r := setupUsuarioRouter(db, models.RolAdmin)

	w := doJSON(t, r, http.MethodPatch, "/admin/usuarios/"+usuario.ID+"/activo", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var guardado models.Usuario
	db.First(&guardado, "id = ?", usuario.ID)
	assert.False(t, guardado.Activo)

	w = doJSON(t, r, http.MethodPatch, "/admin/usuarios/"+usuario.ID+"/rol", map[string]string{
		"rol": models.RolCocina,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	db.First(&guardado, "id = ?", usuario.ID)
	assert.Equal(t, models.RolCocina, guardado.Rol)

	// Rol no válido
	w = doJSON(t, r, http.MethodPatch, "/admin/usuarios/"+usuario.ID+"/rol", map[string]string{
		"rol": "GERENTE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMutacionesUsuarioRequierenAdmin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	usuario := models.Usuario{Nombre: "Ana", Email: "ana@zahub.test", Password: "x", Rol: models.RolCliente, Activo: true}
	db.Create(&usuario)

	r := setupUsuarioRouter(db, models.RolCajero)

	w := doJSON(t, r, http.MethodPatch, "/admin/usuarios/"+usuario.ID+"/activo", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var guardado models.Usuario
	db.First(&guardado, "id = ?", usuario.ID)
	assert.True(t, guardado.Activo)
}
