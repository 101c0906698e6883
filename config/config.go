package config

import "os"

type Config struct {
	ServerPort  string
	InputDir    string
	OutputDir   string
	MaxFileSize int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	inputDir := os.Getenv("PDF_INPUT_DIR")
	if inputDir == "" {
		inputDir = "pdfs"
	}

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}

	return &Config{
		ServerPort:  serverPort,
		InputDir:    inputDir,
		OutputDir:   outputDir,
		MaxFileSize: 32 * 1024 * 1024, // 32 MB
	}
}
