package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agencydesk/premium-extract/dto"
	"github.com/agencydesk/premium-extract/export"
	"github.com/agencydesk/premium-extract/service"
)

type StatementHandler struct {
	extractService *service.ExtractService
}

func NewStatementHandler(extractService *service.ExtractService) *StatementHandler {
	return &StatementHandler{
		extractService: extractService,
	}
}

// ExtractStatement handles the POST /statements/extract endpoint. The uploaded
// statement is walked page by page; format=csv or format=xlsx switches the
// response body from JSON to the corresponding rendering.
func (h *StatementHandler) ExtractStatement(c *gin.Context) {
	log.Println("Received statement extraction request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No statement file provided", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer f.Close()

	pdfData, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	result, err := h.extractService.ExtractStatement(pdfData)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Failed to read statement", err)
		return
	}

	for _, warning := range result.Warnings {
		log.Printf("Warning: %s", warning)
	}

	if len(result.Summaries) == 0 {
		h.sendError(c, http.StatusUnprocessableEntity, "No data was extracted", nil)
		return
	}

	switch c.Query("format") {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="statement.csv"`)
		c.Status(http.StatusOK)
		if err := export.WriteCSV(result.Summaries, c.Writer); err != nil {
			log.Printf("Error: failed to stream CSV - %v", err)
		}
	case "xlsx":
		workbook, err := export.BuildXLSX(result.Summaries)
		if err != nil {
			h.sendError(c, http.StatusInternalServerError, "Failed to build workbook", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="statement.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// sendError sends a structured error response
func (h *StatementHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
