package main

import (
	_ "murilov3d/docs"
	"murilov3d/internal/adapter/http/routes"
	"murilov3d/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MuriloV3D Pricing API
// @version         1.0
// @description     Pricing calculator for a 3D printing shop: cost catalog, quote history and spreadsheet mirror.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logging.Setup()
	routes.Run()
}
