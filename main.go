package main

import (
	"focusflow-api/core/logger"
	"focusflow-api/core/server"

	_ "focusflow-api/docs" // Swagger docs
)

// @title FocusFlow API
// @version 1.0
// @description Focus-window planning API: optimal deep-work slots over a noisy calendar
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@focusflow.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
