package main

import (
	"cinema_api/config"
	"cinema_api/database"
	"cinema_api/helper"
	"cinema_api/router"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	database.ConnectDB()
	database.ConnectRedis()

	if err := helper.StartTicketExpiryScheduler(database.DB); err != nil {
		log.Fatal(err)
	}
	if err := helper.StartScreeningStatusScheduler(database.DB); err != nil {
		log.Fatal(err)
	}
	defer helper.StopSchedulers()

	app := router.NewApp()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + config.ConfigDefault("APP_PORT", "8002")); err != nil {
		log.Fatal(err)
	}
}
