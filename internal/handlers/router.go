package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the routes need. main wires the real stores;
// tests wire their own.
type Deps struct {
	Products *ProductHandler
	Checkout *CheckoutHandler
	Invoices *InvoiceHandler
	Reports  *ReportHandler
	SMS      *SMSHandler
	Receipts *ReceiptHandler
}

// Register mounts every boundary operation under /api, plus the health probe.
func Register(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "online"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", d.Products.List)
		api.POST("/products", d.Products.Create)
		api.PUT("/products/:id", d.Products.Update)
		api.DELETE("/products/:id", d.Products.Delete)
		api.POST("/products/import", d.Products.Import)

		api.POST("/checkout", d.Checkout.Checkout)

		api.GET("/invoices", d.Invoices.History)
		api.GET("/invoices/:id", d.Invoices.Detail)

		api.GET("/reports/z", d.Reports.ZReport)

		api.POST("/receipts", d.Receipts.Render)

		api.POST("/sms", d.SMS.Send)
		api.GET("/settings/sms", d.SMS.GetSettings)
		api.PUT("/settings/sms", d.SMS.SaveSettings)
	}
}
