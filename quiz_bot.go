package enneabot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// QuizBot is the runnable service: configuration, classification table,
// engine and HTTP surface wired together.
//
// Usage:
//
//	config := enneabot.NewBotConfigFromEnv()
//	bot := enneabot.NewQuizBot(config, sessions, results)
//	bot.Run()
type QuizBot struct {
	// Config is the service configuration.
	Config *BotConfig
	// Engine is the conversation state machine.
	Engine *QuizEngine
	// Table is the classification table, loaded in the background by Run.
	Table *ClassificationTable

	router     *gin.Engine
	httpServer *http.Server
	metrics    *Metrics
	startTime  time.Time
}

// NewQuizBot wires the service from configuration and the supplied stores.
func NewQuizBot(config *BotConfig, sessions SessionStore, results ResultStore) *QuizBot {
	table := NewClassificationTable()
	metrics := defaultMetrics()

	engine := NewQuizEngine(table, sessions, results, EngineConfig{
		RestartKeyword: config.RestartKeyword,
		Metrics:        metrics,
	})

	bot := &QuizBot{
		Config:    config,
		Engine:    engine,
		Table:     table,
		metrics:   metrics,
		startTime: time.Now(),
	}
	bot.router = bot.buildRouter()
	return bot
}

func (b *QuizBot) buildRouter() *gin.Engine {
	if !b.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.POST("/message", b.handleMessage)
	router.GET("/healthz", b.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if b.Config.PublicDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(b.Config.PublicDir))))
	}
	return router
}

// Handler returns the HTTP handler serving the bot's routes.
func (b *QuizBot) Handler() http.Handler {
	return b.router
}

type messageRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

// handleMessage serves POST /message: one inbound chat message, one reply.
// Both fields are optional; userId defaults to "default" and message to "".
func (b *QuizBot) handleMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply := b.Engine.HandleMessage(c.Request.Context(), req.UserID, req.Message)
	c.JSON(http.StatusOK, messageResponse{Reply: reply})
}

func (b *QuizBot) handleHealth(c *gin.Context) {
	status := "ok"
	if !b.Table.Ready() {
		status = "loading"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     status,
		"tableReady": b.Table.Ready(),
		"tableRows":  b.Table.Len(),
		"uptime":     time.Since(b.startTime).String(),
	})
}

// Run starts the background table load and the HTTP server, then blocks
// until SIGINT/SIGTERM or a server error, shutting down gracefully.
func (b *QuizBot) Run() error {
	log.Printf("[QuizBot] %s", b.Config.Summary())

	// Requests arriving before the load finishes get the transient
	// not-ready reply; the load runs once and is never retried.
	b.Table.LoadFileAsync(b.Config.DataFile, func(err error) {
		if err == nil {
			b.metrics.TableRows.Set(float64(b.Table.Len()))
		}
	})

	b.httpServer = &http.Server{
		Addr:    b.Config.ListenAddr,
		Handler: b.router,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("[QuizBot] listening on %s", b.Config.ListenAddr)
		if err := b.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		log.Printf("[QuizBot] received %s, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Println("[QuizBot] Goodbye!")
	return nil
}
