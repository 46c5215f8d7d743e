package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"milkbill/config"
	"milkbill/database"
	"milkbill/router"

	billCtrlImp "milkbill/pkg/bill/controllerImp"
	billRepoImp "milkbill/pkg/bill/repositoryImp"
	billSvcImp "milkbill/pkg/bill/serviceImp"

	healthCtrlImp "milkbill/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate — fatal if the store is unreachable
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) Wiring
	repo := billRepoImp.New(db)
	svc := billSvcImp.New(repo)
	bCtrl := billCtrlImp.New(svc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	r := router.New(e, bCtrl, hCtrl)

	// 5) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
