package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/profutur/profutur-api/cmd/app"
)

// @title          PROFUTUR API
// @version        1.0
// @description    Formations, enrollments, mobile money payments and ledger-anchored certificates.
// @BasePath       /api/v1
//
// @termsOfService  http://swagger.io/terms/
// @contact.name   API Support
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
