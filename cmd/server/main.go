package main

import (
	"log"
	"time"

	"github.com/Witcher21/GNS-POS/internal/config"
	"github.com/Witcher21/GNS-POS/internal/database"
	"github.com/Witcher21/GNS-POS/internal/handlers"
	"github.com/Witcher21/GNS-POS/internal/receipt"
	"github.com/Witcher21/GNS-POS/internal/sms"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath())
	if err != nil {
		log.Fatal("❌ ", err)
	}

	smsSettings, err := config.NewSMSStore(cfg.SMSSettingsPath())
	if err != nil {
		log.Fatal("❌ ", err)
	}

	catalog := database.NewCatalogStore(db)
	invoices := database.NewInvoiceStore(db)
	reports := database.NewReportStore(db)
	notifier := sms.NewNotifier(smsSettings)
	renderer := receipt.NewRenderer(cfg.ReceiptsDir(), cfg.StoreName)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.Register(r, handlers.Deps{
		Products: handlers.NewProductHandler(catalog),
		Checkout: handlers.NewCheckoutHandler(invoices),
		Invoices: handlers.NewInvoiceHandler(invoices),
		Reports:  handlers.NewReportHandler(reports),
		SMS:      handlers.NewSMSHandler(notifier, invoices, smsSettings),
		Receipts: handlers.NewReceiptHandler(renderer, invoices),
	})

	log.Println("🚀 POS server starting on", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
