package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/models"
	"github.com/zahub/admin-api/utils"
)

const usuariosPorPagina = 10

type UsuarioController struct {
	DB *gorm.DB
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{DB: db}
}

// Register crea un usuario nuevo con el hash de su contraseña
func (uc *UsuarioController) Register(c *gin.Context) {
	type request struct {
		Nombre   string `json:"nombre" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Telefono string `json:"telefono"`
		Password string `json:"password" binding:"required"`
		Rol      string `json:"rol" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.EsRolValido(req.Rol) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("rol no válido: "+req.Rol))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	usuario := models.Usuario{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Telefono: req.Telefono,
		Password: string(hashed),
		Rol:      req.Rol,
		Activo:   true,
	}

	if err := uc.DB.Create(&usuario).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Usuario registrado: %s (rol=%s)", usuario.Email, usuario.Rol)

	utils.RespondJSON(c, http.StatusCreated, "Usuario registrado", gin.H{
		"usuario_id": usuario.ID,
	})
}

// Login valida credenciales y devuelve un JWT junto al perfil
func (uc *UsuarioController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var usuario models.Usuario
	if err := uc.DB.Where("email = ?", input.Email).First(&usuario).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("credenciales inválidas"))
		return
	}

	if !usuario.Activo {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("el usuario está inactivo"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("credenciales inválidas"))
		return
	}

	token, err := utils.GenerateToken(usuario.ID, usuario.Rol)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Sesión iniciada", gin.H{
		"token": token,
		"perfil": gin.H{
			"id":     usuario.ID,
			"nombre": usuario.Nombre,
			"rol":    usuario.Rol,
		},
	})
}

// Logout invalida el token presentado (fin de la sesión)
func (uc *UsuarioController) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("token no encontrado"))
		return
	}

	utils.BlacklistToken(tokenString)
	utils.RespondJSON(c, http.StatusOK, "Sesión cerrada", nil)
}

// GetPerfil devuelve el perfil del usuario del token
func (uc *UsuarioController) GetPerfil(c *gin.Context) {
	usuarioID := c.GetString("usuario_id")
	if usuarioID == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("usuario no encontrado en el contexto"))
		return
	}

	var usuario models.Usuario
	if err := uc.DB.First(&usuario, "id = ?", usuarioID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("usuario no encontrado"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Perfil", usuario)
}

// GetAllUsuarios aplica búsqueda (nombre, email) y filtros de rol y estado
// sobre el snapshot completo, con páginas de 10.
func (uc *UsuarioController) GetAllUsuarios(c *gin.Context) {
	var usuarios []models.Usuario
	if err := uc.DB.Order("created_at desc").Find(&usuarios).Error; err != nil {
		utils.ErrorLogger.Printf("Error cargando usuarios: %v", err)
		utils.RespondJSON(c, http.StatusInternalServerError, "No se pudieron cargar los usuarios.", []models.Usuario{})
		return
	}

	filtroRol := c.DefaultQuery("rol", "TODOS")
	filtroEstado := c.DefaultQuery("estado", "TODOS")
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	filtrados := make([]models.Usuario, 0, len(usuarios))
	for _, u := range usuarios {
		rol := u.Rol
		if rol == "" {
			rol = models.RolCliente
		}
		if filtroRol != "TODOS" && rol != filtroRol {
			continue
		}
		if filtroEstado == "ACTIVOS" && !u.Activo {
			continue
		}
		if filtroEstado == "INACTIVOS" && u.Activo {
			continue
		}
		if q != "" {
			nombre := strings.ToLower(u.Nombre)
			email := strings.ToLower(u.Email)
			if !strings.Contains(nombre, q) && !strings.Contains(email, q) {
				continue
			}
		}
		filtrados = append(filtrados, u)
	}

	pagina, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	meta, inicio, fin := utils.Paginar(len(filtrados), pagina, usuariosPorPagina)

	utils.RespondJSON(c, http.StatusOK, "Lista de usuarios", gin.H{
		"usuarios":   filtrados[inicio:fin],
		"paginacion": meta,
	})
}

// ToggleActivo invierte la marca activo del usuario
func (uc *UsuarioController) ToggleActivo(c *gin.Context) {
	id := c.Param("usuario_id")

	var usuario models.Usuario
	if err := uc.DB.First(&usuario, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("usuario no encontrado"))
		return
	}

	nuevoActivo := !usuario.Activo
	if err := uc.DB.Model(&usuario).Update("activo", nuevoActivo).Error; err != nil {
		utils.ErrorLogger.Printf("Error actualizando usuario %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo actualizar el usuario."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Usuario actualizado", gin.H{
		"usuario_id": usuario.ID,
		"activo":     nuevoActivo,
	})
}

// CambiarRol cambia el rol del usuario a uno del set fijo
func (uc *UsuarioController) CambiarRol(c *gin.Context) {
	id := c.Param("usuario_id")

	var req struct {
		Rol string `json:"rol" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.EsRolValido(req.Rol) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("rol no válido: "+req.Rol))
		return
	}

	var usuario models.Usuario
	if err := uc.DB.First(&usuario, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("usuario no encontrado"))
		return
	}

	if err := uc.DB.Model(&usuario).Update("rol", req.Rol).Error; err != nil {
		utils.ErrorLogger.Printf("Error cambiando rol de %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("No se pudo actualizar el rol."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Rol actualizado", gin.H{
		"usuario_id": usuario.ID,
		"rol":        req.Rol,
	})
}
