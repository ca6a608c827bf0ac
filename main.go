package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
)

func setupRouter(cat *Catalog) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(visitorTrackingMiddleware())

	r.GET("/", homeHandler(cat))
	r.GET("/projects", projectsHandler(cat))
	r.GET("/projects/:slug", projectDetailHandler(cat))
	r.GET("/about", aboutHandler)
	r.GET("/services", servicesHandler)
	r.GET("/contact", contactHandler)
	r.POST("/contact", contactSubmitHandler)

	setupAdminRoutes(r, cat)
	r.NoRoute(notFoundHandler)

	return r
}

func main() {
	cat, err := loadCatalog(catalogYAML)
	if err != nil {
		log.Fatal("Failed to load project catalog:", err)
	}
	log.Printf("Catalog loaded: %d projects, %d testimonials", len(cat.Projects), len(cat.Testimonials))

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "portfolio.db"
	}
	if err := initDB(dbPath); err != nil {
		log.Fatal("Failed to open database:", err)
	}
	go cleanupOldVisitorData()

	initAdminToken()

	r := setupRouter(cat)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
