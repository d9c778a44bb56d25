package main

import (
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/server"

	_ "event-rsvp-api/docs" // Swagger docs
)

// @title Event RSVP API
// @version 1.0
// @description Backend for the event RSVP and media display application.

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
		logger.Error("run server error", "error", err)
	}
}
