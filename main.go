package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/zahub/admin-api/config"
	"github.com/zahub/admin-api/models"
	"github.com/zahub/admin-api/router"
	"github.com/zahub/admin-api/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: no se encontró archivo .env: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// Limpieza periódica de tokens revocados
	utils.StartBlacklistCleanup()

	r := router.SetupRouter(db)

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Escuchando en el puerto %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Usuario{},
		&models.PizzaBase{},
		&models.Ingrediente{},
		&models.Pedido{},
		&models.PedidoItem{},
		&models.HistorialEstadoPedido{},
		&models.ConfiguracionUsuario{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Falló AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completado.")
}
