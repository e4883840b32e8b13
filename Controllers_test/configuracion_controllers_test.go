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

func setupConfiguracionRouter(db *gorm.DB, usuarioID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("usuario_id", usuarioID)
		c.Set("rol", models.RolAdmin)
		c.Next()
	})

	confCtrl := controllers.NewConfiguracionController(db)
	r.GET("/admin/configuracion", confCtrl.GetConfiguracion)
	r.PUT("/admin/configuracion", confCtrl.UpdateConfiguracion)
	return r
}

// La primera lectura crea la fila con los valores por defecto.
func TestGetConfiguracionCreaPorDefecto(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	usuarioID := seedCliente(t, db, "conf")

	r := setupConfiguracionRouter(db, usuarioID)

	w := doJSON(t, r, http.MethodGet, "/admin/configuracion", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["email_pedidos"])
	assert.Equal(t, false, data["email_novedades"])
	assert.Equal(t, "es", data["idioma"])
	assert.Equal(t, models.TemaClaro, data["tema"])

	var total int64
	db.Model(&models.ConfiguracionUsuario{}).Where("usuario_id = ?", usuarioID).Count(&total)
	assert.Equal(t, int64(1), total)

	// Una segunda lectura no duplica la fila
	doJSON(t, r, http.MethodGet, "/admin/configuracion", nil)
	db.Model(&models.ConfiguracionUsuario{}).Where("usuario_id = ?", usuarioID).Count(&total)
	assert.Equal(t, int64(1), total)
}

// La actualización es parcial: los campos omitidos conservan su valor.
func TestUpdateConfiguracionParcial(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	usuarioID := seedCliente(t, db, "conf-parcial")

	r := setupConfiguracionRouter(db, usuarioID)

	w := doJSON(t, r, http.MethodPut, "/admin/configuracion", gin.H{
		"tema":            models.TemaOscuro,
		"email_novedades": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var conf models.ConfiguracionUsuario
	assert.NoError(t, db.Where("usuario_id = ?", usuarioID).First(&conf).Error)
	assert.Equal(t, models.TemaOscuro, conf.Tema)
	assert.True(t, conf.EmailNovedades)
	// Los que no se mandaron siguen en su defecto
	assert.True(t, conf.EmailPedidos)
	assert.Equal(t, "es", conf.Idioma)
}

func TestUpdateConfiguracionTemaInvalido(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	usuarioID := seedCliente(t, db, "conf-tema")

	r := setupConfiguracionRouter(db, usuarioID)

	w := doJSON(t, r, http.MethodPut, "/admin/configuracion", gin.H{"tema": "sepia"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/admin/configuracion", gin.H{"idioma": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
