package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finsight/decoder/internal/config"
	"github.com/finsight/decoder/internal/llm"
	"github.com/finsight/decoder/internal/statement"
)

type Server struct {
	summarizer *statement.Summarizer
	limits     config.LimitsConfig
	log        zerolog.Logger
}

// New wires the template registry and summary generator. Template validation
// happens here, so a malformed prompt override stops the process at startup
// instead of failing a request.
func New(cfg *config.Config, client llm.Client, log zerolog.Logger) (*Server, error) {
	registry, err := statement.NewRegistry(map[statement.Kind]string{
		statement.KindBalanceSheet: cfg.Prompts.BalanceSheet,
		statement.KindProfitLoss:   cfg.Prompts.ProfitLoss,
		statement.KindCashFlow:     cfg.Prompts.CashFlow,
	})
	if err != nil {
		return nil, err
	}

	return &Server{
		summarizer: statement.NewSummarizer(client, registry, statement.Limits{
			MaxPromptBytes: cfg.Limits.MaxPromptBytes,
		}),
		limits: cfg.Limits,
		log:    log,
	}, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.Health)
	r.GET("/kinds", s.ListKinds)
	r.POST("/documents/:kind/summary", s.SummarizeDocument)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type kindInfo struct {
	Kind  statement.Kind `json:"kind"`
	Title string         `json:"title"`
}

func (s *Server) ListKinds(c *gin.Context) {
	kinds := make([]kindInfo, 0, len(statement.Kinds()))
	for _, k := range statement.Kinds() {
		kinds = append(kinds, kindInfo{Kind: k, Title: k.Title()})
	}
	c.JSON(http.StatusOK, gin.H{"kinds": kinds})
}

type summaryResponse struct {
	ID      string             `json:"id"`
	Kind    statement.Kind     `json:"kind"`
	Summary string             `json:"summary,omitempty"`
	Failure string             `json:"failure,omitempty"`
	Table   *statement.Table   `json:"table"`
	Chart   []statement.Series `json:"chart"`
}

// SummarizeDocument accepts one uploaded statement in the multipart field
// "file", runs the summary generator and responds with the narrative (or its
// failure text) alongside the parsed table and the numeric series a chart
// needs. Generator failures keep the table and chart in the body so the
// document view can still render them: input failures respond 422, external
// ones 502. One document's failure never affects another request.
func (s *Server) SummarizeDocument(c *gin.Context) {
	id := uuid.NewString()

	kind, err := statement.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing uploaded file (multipart field 'file')"})
		return
	}
	if s.limits.MaxUploadBytes > 0 && header.Size > s.limits.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "uploaded file exceeds the size limit"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer f.Close()

	table, err := statement.LoadTable(header.Filename, f)
	if err != nil {
		s.log.Warn().Str("id", id).Str("kind", string(kind)).Err(err).Msg("failed to load document")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.summarizer.Summarize(c.Request.Context(), table, kind)

	status := http.StatusOK
	switch result.Cause {
	case statement.FailureInput:
		status = http.StatusUnprocessableEntity
	case statement.FailureExternal:
		status = http.StatusBadGateway
	}
	if result.Failed() {
		s.log.Warn().Str("id", id).Str("kind", string(kind)).Str("failure", result.Failure).Msg("summary failed")
	} else {
		s.log.Info().Str("id", id).Str("kind", string(kind)).Int("rows", len(table.Rows)).Msg("summary generated")
	}

	c.JSON(status, summaryResponse{
		ID:      id,
		Kind:    kind,
		Summary: result.Summary,
		Failure: result.Failure,
		Table:   table,
		Chart:   table.NumericColumns(),
	})
}
