package main

import (
	"flag"
	"log"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"gorm.io/gorm"

	"github.com/shafiuddin/tajhotel/booking"
	"github.com/shafiuddin/tajhotel/cli"
	"github.com/shafiuddin/tajhotel/config"
	"github.com/shafiuddin/tajhotel/customer"
	"github.com/shafiuddin/tajhotel/history"
	"github.com/shafiuddin/tajhotel/mail"
	"github.com/shafiuddin/tajhotel/payment"
	"github.com/shafiuddin/tajhotel/room"
	"github.com/shafiuddin/tajhotel/storage"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP API instead of the interactive console")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	db, err := storage.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}
	err = db.AutoMigrate(&customer.Customer{}, &room.Room{}, &payment.Payment{}, &booking.Booking{})
	if err != nil {
		log.Fatal(err)
	}
	err = seedRooms(db)
	if err != nil {
		log.Fatal(err)
	}

	var mailer mail.Mailer = mail.Disabled{}
	if cfg.SMTPSender != "" {
		mailer = mail.SMTP{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Sender:   cfg.SMTPSender,
			Password: cfg.SMTPPassword,
		}
	}

	rooms := room.NewDirectory(db)
	ledger := payment.NewLedger(db)
	engine := booking.NewEngine(db)
	accounts := customer.NewAccounts(db, rooms, mailer)
	reporter := history.NewReporter(db)

	if *serve {
		runServer(cfg, rooms, ledger, engine, accounts, reporter)
		return
	}

	console := cli.New(os.Stdin, os.Stdout, rooms, engine, ledger, accounts, reporter)
	if err := console.Run(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cfg config.App, rooms *room.Directory, ledger *payment.Ledger, engine *booking.Engine, accounts *customer.Accounts, reporter *history.Reporter) {
	app := fiber.New(fiber.Config{AppName: "TAJ HOTEL"})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://127.0.0.1:5173",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	api := app.Group("/api/v1")

	roomRoutes(api.Group("/rooms"), &room.Handler{Directory: rooms})
	customerRoutes(api.Group("/customers"), &customer.Handler{Accounts: accounts, JWTSecret: cfg.JWTSecret})
	bookingRoutes(api.Group("/bookings"), &booking.Handler{Engine: engine, Ledger: ledger}, cfg.JWTSecret)
	historyRoutes(api.Group("/history"), &history.Handler{Reporter: reporter}, cfg.JWTSecret)

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

func seedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&room.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := []room.Room{
		{RoomType: "Single", Price: 100, IsAvailable: true},
		{RoomType: "Single", Price: 100, IsAvailable: true},
		{RoomType: "Double", Price: 180, IsAvailable: true},
		{RoomType: "Double", Price: 180, IsAvailable: true},
		{RoomType: "Suite", Price: 350, IsAvailable: true},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	log.Println("room inventory seeded successfully")
	return nil
}
