package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/models"
	"github.com/zahub/admin-api/utils"
)

type ConfiguracionController struct {
	DB *gorm.DB
}

func NewConfiguracionController(db *gorm.DB) *ConfiguracionController {
	return &ConfiguracionController{DB: db}
}

// GetConfiguracion devuelve las preferencias del usuario del token,
// creando la fila con los valores por defecto en la primera lectura.
func (cc *ConfiguracionController) GetConfiguracion(c *gin.Context) {
	usuarioID := c.GetString("usuario_id")
	if usuarioID == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("usuario no encontrado en el contexto"))
		return
	}

	var conf models.ConfiguracionUsuario
	err := cc.DB.Where("usuario_id = ?", usuarioID).First(&conf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conf = models.ConfiguracionPorDefecto(usuarioID)
		if err := cc.DB.Create(&conf).Error; err != nil {
			utils.ErrorLogger.Printf("Error creando configuración de %s: %v", usuarioID, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo cargar la configuración."))
			return
		}
	} else if err != nil {
		utils.ErrorLogger.Printf("Error cargando configuración de %s: %v", usuarioID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo cargar la configuración."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Configuración", conf)
}

// UpdateConfiguracion actualiza las preferencias (último escritor gana)
func (cc *ConfiguracionController) UpdateConfiguracion(c *gin.Context) {
	usuarioID := c.GetString("usuario_id")
	if usuarioID == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("usuario no encontrado en el contexto"))
		return
	}

	var req struct {
		EmailPedidos   *bool   `json:"email_pedidos"`
		EmailNovedades *bool   `json:"email_novedades"`
		PushEstado     *bool   `json:"push_estado"`
		TwoFactor      *bool   `json:"two_factor"`
		Idioma         *string `json:"idioma"`
		Tema           *string `json:"tema"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Tema != nil && *req.Tema != models.TemaClaro && *req.Tema != models.TemaOscuro {
		utils.RespondError(c, http.StatusBadRequest, errors.New("tema no válido: "+*req.Tema))
		return
	}
	if req.Idioma != nil && strings.TrimSpace(*req.Idioma) == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("el idioma no puede estar vacío"))
		return
	}

	var conf models.ConfiguracionUsuario
	err := cc.DB.Where("usuario_id = ?", usuarioID).First(&conf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conf = models.ConfiguracionPorDefecto(usuarioID)
		if err := cc.DB.Create(&conf).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo guardar la configuración."))
			return
		}
	} else if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo guardar la configuración."))
		return
	}

	updates := map[string]interface{}{}
	if req.EmailPedidos != nil {
		updates["email_pedidos"] = *req.EmailPedidos
	}
	if req.EmailNovedades != nil {
		updates["email_novedades"] = *req.EmailNovedades
	}
	if req.PushEstado != nil {
		updates["push_estado"] = *req.PushEstado
	}
	if req.TwoFactor != nil {
		updates["two_factor"] = *req.TwoFactor
	}
	if req.Idioma != nil {
		updates["idioma"] = strings.TrimSpace(*req.Idioma)
	}
	if req.Tema != nil {
		updates["tema"] = *req.Tema
	}

	if len(updates) > 0 {
		if err := cc.DB.Model(&conf).Updates(updates).Error; err != nil {
			utils.ErrorLogger.Printf("Error guardando configuración de %s: %v", usuarioID, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo guardar la configuración."))
			return
		}
	}

	cc.DB.Where("usuario_id = ?", usuarioID).First(&conf)
	utils.RespondJSON(c, http.StatusOK, "Configuración guardada", conf)
}
