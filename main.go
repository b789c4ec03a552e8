// file: main.go
package main

import (
	"log"

	"hguoj/config"
	"hguoj/database"
	"hguoj/routes"
	"hguoj/utils"

	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := utils.InitLogger(config.C.Environment); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer utils.Log.Sync()

	if err := database.Connect(); err != nil {
		utils.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.MigrateTables(); err != nil {
		utils.Log.Fatal("failed to migrate tables", zap.Error(err))
	}
	if err := database.InitRedis(); err != nil {
		utils.Log.Fatal("failed to connect to redis", zap.Error(err))
	}

	r := routes.SetupRouter()

	utils.Log.Info("starting server", zap.String("addr", config.C.HTTP.Addr))
	if err := r.Run(config.C.HTTP.Addr); err != nil {
		utils.Log.Fatal("failed to run server", zap.Error(err))
	}
}
