// This file implements the generate command, the end-to-end blueprint
// generation entrypoint.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veltaire/planforge/core/blueprint"
	"github.com/veltaire/planforge/core/config"
	"github.com/veltaire/planforge/core/domain"
	domaincache "github.com/veltaire/planforge/core/domain/cache"
	"github.com/veltaire/planforge/core/generate"
	"github.com/veltaire/planforge/core/opportunity"
	"github.com/veltaire/planforge/core/pattern"
	"github.com/veltaire/planforge/core/profile"
	"github.com/veltaire/planforge/core/providers"
	"github.com/veltaire/planforge/core/store"
)

var (
	generateProfilePath     string
	generateOpportunityPath string
	generateProvider        string
	generateInitiative      int
	generateInstructions    string
	generateUser            string
	generateOutPath         string
	generateSave            bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an AI-agent deployment blueprint",
	Long: `Generate a deployment blueprint from a business profile.

The profile is a YAML document describing the company, its strategic
initiatives, and its systems inventory. An optional opportunity document
narrows generation to one automation opportunity.

Examples:
  planforge generate --profile company.yaml
  planforge generate --profile company.yaml --opportunity opp.yaml
  planforge generate --profile company.yaml --initiative 0 --provider openai
  planforge generate --profile company.yaml --save --out blueprint.json`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateProfilePath, "profile", "", "path to the business profile YAML (required)")
	generateCmd.Flags().StringVar(&generateOpportunityPath, "opportunity", "", "path to an opportunity document YAML")
	generateCmd.Flags().StringVar(&generateProvider, "provider", "", "model provider to use (anthropic, openai, google)")
	generateCmd.Flags().IntVar(&generateInitiative, "initiative", -1, "index of a single initiative to focus on")
	generateCmd.Flags().StringVar(&generateInstructions, "instructions", "", "special instructions carried into the blueprint")
	generateCmd.Flags().StringVar(&generateUser, "user", "", "user identifier recorded in audit logs")
	generateCmd.Flags().StringVar(&generateOutPath, "out", "", "write the blueprint JSON to this file instead of stdout")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "persist the blueprint to the local store")
	_ = generateCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	manager, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer manager.Close()
	cfg := manager.Get()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.LLM.Timeout)
	defer cancel()

	// Hot-reload tunables for the duration of the run; Close stops the watch.
	go func() {
		if err := manager.Watch(ctx, logger); err != nil {
			logger.Warn("config watcher stopped", "error", err)
		}
	}()

	prof, err := profile.Load(generateProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	var opp any
	if generateOpportunityPath != "" {
		opp, err = opportunity.Load(generateOpportunityPath)
		if err != nil {
			return fmt.Errorf("failed to load opportunity: %w", err)
		}
	}

	registry, err := buildProviderRegistry(ctx, cfg)
	if err != nil {
		return err
	}

	classifier, err := domaincache.NewClassificationCache(domain.NewClassifier(), &domaincache.Config{
		MaxCost: cfg.Cache.ClassificationEntries,
	})
	if err != nil {
		return fmt.Errorf("failed to build classification cache: %w", err)
	}
	defer classifier.Close()

	service := generate.NewService(
		domain.NewRegistry(),
		classifier,
		pattern.NewRegistry(),
		registry,
		logger,
	)

	req := &generate.Request{
		Profile:             prof,
		UserID:              generateUser,
		PreferredProvider:   generateProvider,
		SpecialInstructions: generateInstructions,
		Opportunity:         opp,
	}
	if generateInitiative >= 0 {
		idx := generateInitiative
		req.InitiativeIndex = &idx
	}

	bp, err := service.GenerateBlueprint(ctx, req)
	if err != nil {
		return err
	}

	if generateSave {
		if err := saveBlueprint(ctx, cfg, prof.CompanyName, bp, logger); err != nil {
			return err
		}
	}

	return writeBlueprint(bp)
}

// buildProviderRegistry registers every provider whose API key resolves from
// the environment, then applies the configured default.
func buildProviderRegistry(ctx context.Context, cfg *config.Config) (*providers.Registry, error) {
	registry := providers.NewRegistry()

	if base := cfg.ProviderBase(cfg.Providers.Anthropic); base.APIKey != "" {
		err := registry.RegisterAnthropic(providers.AnthropicConfig{
			BaseConfig: base,
			BaseURL:    cfg.Providers.Anthropic.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("anthropic: %w", err)
		}
	}
	if base := cfg.ProviderBase(cfg.Providers.OpenAI); base.APIKey != "" {
		err := registry.RegisterOpenAI(providers.OpenAIConfig{
			BaseConfig: base,
			BaseURL:    cfg.Providers.OpenAI.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("openai: %w", err)
		}
	}
	if base := cfg.ProviderBase(cfg.Providers.Google); base.APIKey != "" {
		err := registry.RegisterGoogle(ctx, providers.GoogleConfig{BaseConfig: base})
		if err != nil {
			return nil, fmt.Errorf("google: %w", err)
		}
	}

	// Best effort: an unregistered default leaves first-registered in place.
	_ = registry.SetDefault(providers.ProviderType(cfg.LLM.DefaultProvider))

	return registry, nil
}

func saveBlueprint(ctx context.Context, cfg *config.Config, company string, bp *blueprint.AgenticBlueprint, logger *slog.Logger) error {
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open blueprint store: %w", err)
	}
	defer db.Close()

	if err := db.Save(ctx, company, bp); err != nil {
		return err
	}
	logger.Info("blueprint saved",
		"blueprint_id", bp.Provenance.BlueprintID, "store", cfg.Store.Path)
	return nil
}

func writeBlueprint(bp any) error {
	data, err := json.MarshalIndent(bp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode blueprint: %w", err)
	}
	data = append(data, '\n')

	if generateOutPath != "" {
		return os.WriteFile(generateOutPath, data, 0o644)
	}
	_, err = os.Stdout.Write(data)
	return err
}
