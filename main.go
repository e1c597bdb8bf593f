package main

import (
	"hangs.link/configs/configsapp"
	"hangs.link/configs/configsdatabase"
	"hangs.link/configs/configslog"
	"hangs.link/database"
	"hangs.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configsapp.LoadConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	// Migrasyon her açılışta çalışır; örnek veri sadece boş depoya yazılır.
	if err := database.Initialize(configsdatabase.GetDB(), true, true); err != nil {
		configslog.Log.Fatal("Depo hazırlanamadı", zap.Error(err))
	}

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "Let's Hang",
		Views:   engine,
	})

	routes.SetupRoutes(app)

	configslog.SLog.Infof("Sunucu dinliyor: :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Sunucu durdu", zap.Error(err))
	}
}
