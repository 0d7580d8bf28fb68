package server

import (
	_ "github.com/ainsongjog/whatsapp-bridge/src/docs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

func makeDocs(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}
