package main

import (
	"flag"

	"hangs.link/configs/configsapp"
	"hangs.link/configs/configsdatabase"
	"hangs.link/configs/configslog"
	"hangs.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Depo tablosunu migrate et")
	seedFlag := flag.Bool("seed", false, "Depo boşsa örnek veriyi yükle")
	flag.Parse()

	configsapp.LoadConfig()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	if err := database.Initialize(db, *migrateFlag, *seedFlag); err != nil {
		configslog.SLog.Fatalf("Veritabanı başlatma başarısız: %v", err)
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
