package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pigmint/ingestion-service/client"
	"github.com/pigmint/ingestion-service/config"
	"github.com/pigmint/ingestion-service/handler"
	"github.com/pigmint/ingestion-service/logger"
	"github.com/pigmint/ingestion-service/service"
	"github.com/pigmint/ingestion-service/storage"
)

func main() {
	log := logger.New()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	store, err := storage.NewBoltStore(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer store.Close()

	ocrSpace := client.NewOCRSpaceClient(cfg.OCRAPIURL, cfg.OCRAPIKey)
	tesseract := client.NewTesseractClient(cfg.TessdataPath)

	receiptService := service.NewReceiptService(ocrSpace, tesseract, log)
	importService := service.NewImportService(receiptService, log)
	transactionService := service.NewTransactionService(store, log)
	ruleService := service.NewRuleService(store, log)
	reportService := service.NewReportService(store)

	importHandler := handler.NewImportHandler(importService, transactionService, cfg.MaxUploadSize, log)
	receiptHandler := handler.NewReceiptHandler(receiptService, transactionService, log)
	transactionHandler := handler.NewTransactionHandler(transactionService, ruleService, log)
	ruleHandler := handler.NewRuleHandler(ruleService, log)
	reportHandler := handler.NewReportHandler(reportService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))
	router.MaxMultipartMemory = cfg.MaxUploadSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/imports", importHandler.ImportFile)
		v1.POST("/receipts/scan", receiptHandler.ScanReceipt)

		v1.POST("/transactions", transactionHandler.CreateTransaction)
		v1.GET("/transactions", transactionHandler.ListTransactions)
		v1.GET("/transactions/:id", transactionHandler.GetTransaction)
		v1.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
		v1.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
		v1.GET("/transactions/:id/rules", transactionHandler.MatchRules)

		v1.POST("/rules", ruleHandler.CreateRule)
		v1.GET("/rules", ruleHandler.ListRules)
		v1.GET("/rules/:id", ruleHandler.GetRule)
		v1.PUT("/rules/:id", ruleHandler.UpdateRule)
		v1.DELETE("/rules/:id", ruleHandler.DeleteRule)

		v1.GET("/reports/summary", reportHandler.SpendingSummary)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("starting ingestion service")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// requestLogger logs one line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
