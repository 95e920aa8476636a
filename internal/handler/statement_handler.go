package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autoledger/internal/csvexport"
	"autoledger/internal/domain"
	"autoledger/internal/service"
	"autoledger/internal/xlsxexport"
)

// StatementHandler handles statement processing and archive endpoints.
type StatementHandler struct {
	pipeline     service.PipelineService
	statements   service.StatementService
	parseTimeout time.Duration
}

// NewStatementHandler creates a new StatementHandler. A zero parseTimeout
// disables the processing deadline.
func NewStatementHandler(pipeline service.PipelineService, statements service.StatementService, parseTimeout time.Duration) *StatementHandler {
	return &StatementHandler{
		pipeline:     pipeline,
		statements:   statements,
		parseTimeout: parseTimeout,
	}
}

// ProcessRequest is the JSON body for POST /statements/process: ordered
// pages, each an ordered list of text lines.
type ProcessRequest struct {
	Name  string     `json:"name"`
	Pages [][]string `json:"pages" binding:"required"`
}

// Process handles POST /api/v1/statements/process.
func (h *StatementHandler) Process(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ctx := c.Request.Context()
	if h.parseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.parseTimeout)
		defer cancel()
	}

	result, err := h.pipeline.Process(ctx, &domain.StatementDocument{Name: req.Name, Pages: req.Pages})
	if err != nil {
		HandleError(c, err)
		return
	}

	// Archive failures must not fail the processing request.
	if h.statements != nil {
		if _, err := h.statements.Archive(c.Request.Context(), result); err != nil {
			log.Printf("handler.StatementHandler: archiving statement %s failed: %v", result.ID, err)
		}
	}

	RespondOK(c, result)
}

// List handles GET /api/v1/statements.
func (h *StatementHandler) List(c *gin.Context) {
	offset := parseIntQuery(c, "offset", 0)
	limit := parseIntQuery(c, "limit", 20)

	stmts, total, err := h.statements.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, stmts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/statements/:id.
func (h *StatementHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	stmt, err := h.statements.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stmt)
}

// Delete handles DELETE /api/v1/statements/:id.
func (h *StatementHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.statements.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// Export handles GET /api/v1/statements/:id/export?format=csv|xlsx.
func (h *StatementHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	stmt, err := h.statements.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	var result domain.StatementResult
	if err := json.Unmarshal(stmt.Result, &result); err != nil {
		HandleError(c, fmt.Errorf("unmarshaling archived result: %w", err))
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		h.exportCSV(c, id, &result)
	case "xlsx":
		h.exportXLSX(c, id, &result)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}

func (h *StatementHandler) exportCSV(c *gin.Context, id uuid.UUID, result *domain.StatementResult) {
	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteEntries(result.Ledger); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ledger-%s.csv", id))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *StatementHandler) exportXLSX(c *gin.Context, id uuid.UUID, result *domain.StatementResult) {
	f, err := xlsxexport.NewWorkbook(result)
	if err != nil {
		HandleError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ledger-%s.xlsx", id))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// Banks handles GET /api/v1/banks.
func (h *StatementHandler) Banks(c *gin.Context) {
	banks := h.pipeline.SupportedBanks()
	RespondOK(c, gin.H{"supported_banks": banks, "total_banks": len(banks)})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func parseIntQuery(c *gin.Context, key string, def int) int {
	if s := c.Query(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
