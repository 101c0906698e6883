package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/agencydesk/premium-extract/config"
	"github.com/agencydesk/premium-extract/export"
	"github.com/agencydesk/premium-extract/handler"
	"github.com/agencydesk/premium-extract/service"
)

func main() {
	// Optional local overrides for the input/output directories and port.
	_ = godotenv.Load()

	csvName := flag.String("o", "", "name of the output CSV file in the output directory")
	xlsxName := flag.String("x", "", "name of the output XLSX file in the output directory")
	serve := flag.Bool("serve", false, "run the HTTP extraction API instead of a one-shot extraction")
	flag.Parse()

	cfg := config.LoadConfig()
	extractService := service.NewExtractService(service.NewPDFProcessor())

	if *serve {
		runServer(cfg, extractService)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: premium-extract [-o file.csv] [-x file.xlsx] <statement.pdf>")
		os.Exit(1)
	}

	os.Exit(run(cfg, extractService, flag.Arg(0), *csvName, *xlsxName))
}

func run(cfg *config.Config, extractService *service.ExtractService, filename, csvName, xlsxName string) int {
	pdfPath := filepath.Join(cfg.InputDir, filename)

	pdfData, err := os.ReadFile(pdfPath)
	if err != nil {
		log.Printf("Error: file not found: %s", pdfPath)
		return 1
	}

	result, err := extractService.ExtractStatement(pdfData)
	if err != nil {
		log.Printf("Error: %v", err)
		return 1
	}

	for _, warning := range result.Warnings {
		log.Printf("Warning: %s", warning)
	}

	if len(result.Summaries) == 0 {
		log.Println("No data was extracted.")
		return 1
	}

	if csvName == "" && xlsxName == "" {
		export.PrintSummaries(os.Stdout, result.Summaries)
		return 0
	}

	if csvName != "" {
		outPath := filepath.Join(cfg.OutputDir, csvName)
		if err := export.WriteCSVFile(result.Summaries, outPath); err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
		log.Printf("Saved to %s", outPath)
	}
	if xlsxName != "" {
		outPath := filepath.Join(cfg.OutputDir, xlsxName)
		if err := export.WriteXLSXFile(result.Summaries, outPath); err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
		log.Printf("Saved to %s", outPath)
	}
	return 0
}

func runServer(cfg *config.Config, extractService *service.ExtractService) {
	statementHandler := handler.NewStatementHandler(extractService)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Premium Statement Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		statements := api.Group("/statements")
		{
			statements.POST("/extract", statementHandler.ExtractStatement)
		}
	}

	log.Printf("Starting Premium Statement Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
