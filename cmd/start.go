/*
Copyright © 2025 qanooni
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/qanooni/hr-assistant-be/config"
	"github.com/qanooni/hr-assistant-be/handler"
	"github.com/qanooni/hr-assistant-be/service"
	"github.com/qanooni/hr-assistant-be/store"
	"github.com/qanooni/hr-assistant-be/types"
	"github.com/spf13/cobra"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the assistant server",
	Long:  `Starts the HTTP server, preloading law documents from the configured directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		corpus := store.NewCorpusStore()
		chunker := service.NewChunkerService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.ChunkSize,
			OverlapSize:  cfg.ChunkOverlap,
		})
		extract := service.NewExtractService()
		embedder := service.NewOpenAIEmbedder(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.EmbeddingModel)
		search := service.NewSearchService(embedder)
		aiService := service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model)

		fileService := service.NewFileService(cfg.UploadDir, corpus, extract, chunker, embedder)
		ragService := service.NewRAGService(corpus, search, aiService)
		wsService := service.NewWebSocketService(ragService, cfg.CorsOrigins)

		// Preload law documents in the background. Per-file failures are
		// logged and never fatal.
		go fileService.PreloadDirectory(context.Background(), cfg.LawsDir)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler(cfg.CorsOrigins)
		uploadHandler := handler.NewUploadHandler(fileService, cfg.MaxFileSizeMB)
		ocrHandler := handler.NewOCRHandler(fileService, cfg.MaxFileSizeMB)
		chatHandler := handler.NewChatHandler(ragService)
		documentHandler := handler.NewDocumentHandler(corpus)

		// Setup Gin router
		router := gin.Default()
		router.MaxMultipartMemory = cfg.MaxFileSizeMB << 20
		router.Use(corsHandler.CorsMiddleware)

		router.POST("/admin/upload-law", uploadHandler.HandleUploadLaw)
		router.POST("/upload-contract", uploadHandler.HandleUploadContract)
		router.POST("/ocr/upload", ocrHandler.HandleUpload)
		router.POST("/chat", chatHandler.HandleChat)
		router.GET("/documents", documentHandler.HandleCounts)
		router.DELETE("/documents", documentHandler.HandleDelete)
		router.GET("/health", documentHandler.HandleHealth)
		router.GET("/ws/chat", func(c *gin.Context) {
			wsService.HandleChat(c.Writer, c.Request)
		})

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
