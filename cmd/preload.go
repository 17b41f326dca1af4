/*
Copyright © 2025 qanooni
*/
package cmd

import (
	"context"
	"log"

	"github.com/qanooni/hr-assistant-be/config"
	"github.com/qanooni/hr-assistant-be/service"
	"github.com/qanooni/hr-assistant-be/store"
	"github.com/qanooni/hr-assistant-be/types"
	"github.com/spf13/cobra"
)

// preloadCmd ingests a directory of law documents and reports the chunk
// counts, useful for validating a law set before deploying it.
var preloadCmd = &cobra.Command{
	Use:   "preload",
	Short: "Ingest a directory of law documents",
	Long: `Chunks and embeds every supported document in a directory the same way
the server does at startup, reporting per-file results.`,
	Run: func(cmd *cobra.Command, args []string) {
		directory, _ := cmd.Flags().GetString("directory")

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if directory == "" {
			directory = cfg.LawsDir
		}

		corpus := store.NewCorpusStore()
		chunker := service.NewChunkerService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.ChunkSize,
			OverlapSize:  cfg.ChunkOverlap,
		})
		embedder := service.NewOpenAIEmbedder(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.EmbeddingModel)
		fileService := service.NewFileService(cfg.UploadDir, corpus, service.NewExtractService(), chunker, embedder)

		loaded := fileService.PreloadDirectory(context.Background(), directory)
		if loaded == 0 {
			log.Printf("No documents loaded from %s", directory)
			return
		}
		log.Printf("Loaded %d files, %d law chunks total", loaded, corpus.Count(types.DocumentTypeLaw))
	},
}

func init() {
	rootCmd.AddCommand(preloadCmd)

	preloadCmd.Flags().StringP("directory", "d", "", "Path to the directory to ingest (defaults to laws_dir)")
}
