// Package ui hosts the journaling core behind a JSON HTTP API. The core
// stays library-shaped; this package only translates requests to operations
// and errors to status codes.
package ui

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"socratic/app"
	"socratic/domain/core"
	"socratic/domain/workflow"
	"socratic/internal"
	apperrors "socratic/internal/errors"
)

// Server represents the web server for the journaling API
type Server struct {
	router   *gin.Engine
	journal  *app.JournalService
	transfer *app.TransferService
	logger   *internal.Logger

	// Active wizard sessions keyed by draft id. Sequencers are not safe for
	// concurrent use, so every access happens under the registry lock.
	mu         sync.Mutex
	sequencers map[core.DraftID]*workflow.Sequencer
}

// NewServer creates a new web server instance
func NewServer(journal *app.JournalService, transfer *app.TransferService, logger *internal.Logger, ginMode string) *Server {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	s := &Server{
		router:     gin.Default(),
		journal:    journal,
		transfer:   transfer,
		logger:     logger,
		sequencers: make(map[core.DraftID]*workflow.Sequencer),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/sessions", s.handleStartSession)
		api.GET("/sessions/:id", s.handleGetSession)
		api.PUT("/sessions/:id", s.handleUpdateSession)
		api.POST("/sessions/:id/advance", s.handleAdvance)
		api.POST("/sessions/:id/retreat", s.handleRetreat)
		api.POST("/sessions/:id/cancel", s.handleCancel)
		api.POST("/sessions/:id/save", s.handleSave)

		api.POST("/triage", s.handleTriage)

		api.GET("/journal", s.handleJournal)
		api.DELETE("/journal/:id", s.handleDelete)
		api.GET("/analytics", s.handleAnalytics)

		api.GET("/export", s.handleExport)
		api.GET("/export.xlsx", s.handleExportExcel)
		api.POST("/import", s.handleImport)

		api.GET("/backup", s.handleBackupStatus)
		api.POST("/backup", s.handleRecordBackup)

		api.GET("/theme", s.handleGetTheme)
		api.PUT("/theme", s.handleSetTheme)
	}
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) sequencer(id string) (*workflow.Sequencer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.sequencers[core.DraftID(id)]
	return seq, ok
}

func (s *Server) register(seq *workflow.Sequencer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequencers[seq.ID()] = seq
}

// respondError maps domain sentinels onto HTTP statuses and stable error
// codes. Clients branch on the code, not the message text.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, apperrors.CodeInternalError
	switch {
	case core.IsValidationError(err):
		status, code = http.StatusBadRequest, apperrors.CodeValidationError
	case core.IsImportFormatError(err):
		status, code = http.StatusBadRequest, apperrors.CodeImportFormat
	case core.IsInvalidCategoryError(err):
		status, code = http.StatusBadRequest, apperrors.CodeInvalidCategory
	case core.IsNotFoundError(err):
		status, code = http.StatusNotFound, apperrors.CodeNotFound
	case core.IsSaveInFlightError(err):
		status, code = http.StatusConflict, apperrors.CodeSaveInFlight
	case core.IsInsightError(err):
		status, code = http.StatusBadGateway, apperrors.CodeInsightGeneration
	case apperrors.IsAppError(err):
		code = apperrors.GetCode(err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
