package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/controllers"
	"github.com/zahub/admin-api/middlewares"
	"github.com/zahub/admin-api/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Antes de registrar rutas: Gin fija la cadena de handlers al registrar
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	usuarioCtrl := controllers.NewUsuarioController(db)
	pedidoCtrl := controllers.NewPedidoController(db)
	pizzaCtrl := controllers.NewPizzaController(db)
	ingredienteCtrl := controllers.NewIngredienteController(db)
	dashboardCtrl := controllers.NewDashboardController(db)
	configCtrl := controllers.NewConfiguracionController(db)

	// ----------------------------------------------------------------
	//                      RUTAS PÚBLICAS
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", usuarioCtrl.Register)
		public.POST("/login", usuarioCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      RUTAS AUTENTICADAS
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	// Sesión
	auth.POST("/logout", usuarioCtrl.Logout)
	auth.GET("/perfil", usuarioCtrl.GetPerfil)

	// PEDIDOS
	auth.GET("/pedidos", pedidoCtrl.GetAllPedidos)
	auth.POST("/pedidos/prueba", pedidoCtrl.CrearPedidoDePrueba)
	auth.GET("/pedidos/:pedido_id", pedidoCtrl.GetPedidoByID)
	auth.PATCH("/pedidos/:pedido_id/estado", pedidoCtrl.CambiarEstado)

	// USUARIOS (solo ADMIN puede mutar)
	auth.GET("/usuarios", usuarioCtrl.GetAllUsuarios)
	soloAdmin := middlewares.RequireRol(models.RolAdmin)
	auth.PATCH("/usuarios/:usuario_id/activo", soloAdmin, usuarioCtrl.ToggleActivo)
	auth.PATCH("/usuarios/:usuario_id/rol", soloAdmin, usuarioCtrl.CambiarRol)

	// PIZZAS
	auth.GET("/pizzas", pizzaCtrl.GetAllPizzas)
	auth.POST("/pizzas", pizzaCtrl.CreatePizza)
	auth.PATCH("/pizzas/:pizza_id", pizzaCtrl.UpdatePizza)
	auth.PATCH("/pizzas/:pizza_id/activa", pizzaCtrl.ToggleActiva)
	auth.DELETE("/pizzas/:pizza_id", pizzaCtrl.DeletePizza)

	// INGREDIENTES
	auth.GET("/ingredientes", ingredienteCtrl.GetAllIngredientes)
	auth.POST("/ingredientes", ingredienteCtrl.CreateIngrediente)
	auth.PATCH("/ingredientes/:ingrediente_id", ingredienteCtrl.UpdateIngrediente)
	auth.PATCH("/ingredientes/:ingrediente_id/activo", ingredienteCtrl.ToggleActivo)
	auth.DELETE("/ingredientes/:ingrediente_id", ingredienteCtrl.DeleteIngrediente)

	// CONFIGURACIÓN (preferencias del usuario, incluye tema)
	auth.GET("/configuracion", configCtrl.GetConfiguracion)
	auth.PUT("/configuracion", configCtrl.UpdateConfiguracion)

	// DASHBOARD + REPORTES (solo ADMIN, validado en el controlador)
	auth.GET("/dashboard/stats", dashboardCtrl.GetStats)
	auth.GET("/reportes/export", dashboardCtrl.ExportPedidos)

	return r
}
