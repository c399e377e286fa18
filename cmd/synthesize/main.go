package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tracemineral/synthesis-engine/internal/adapters/cache"
	"github.com/tracemineral/synthesis-engine/internal/adapters/database"
	"github.com/tracemineral/synthesis-engine/internal/application/services"
	"github.com/tracemineral/synthesis-engine/internal/domain/entities"
	"github.com/tracemineral/synthesis-engine/internal/grading"
	postgresclient "github.com/tracemineral/synthesis-engine/internal/infrastructure/clients/postgres"
	redisclient "github.com/tracemineral/synthesis-engine/internal/infrastructure/clients/redis"
	"github.com/tracemineral/synthesis-engine/internal/infrastructure/observability"
	"github.com/tracemineral/synthesis-engine/internal/mapping"
	"github.com/tracemineral/synthesis-engine/internal/paradigm"
	"github.com/tracemineral/synthesis-engine/internal/report"
	"github.com/tracemineral/synthesis-engine/internal/synthesis"
	"github.com/tracemineral/synthesis-engine/pkg/config"
)

// synthesisRequest is the input file layout: one hypothesis plus the
// per-paradigm evidence submissions extracted upstream.
type synthesisRequest struct {
	Hypothesis  string                        `json:"hypothesis"`
	Mineral     string                        `json:"mineral"`
	Submissions []services.EvidenceSubmission `json:"submissions"`
}

func main() {
	inputPath := flag.String("input", "", "path to a synthesis request JSON file")
	stakeholder := flag.String("stakeholder", string(entities.StakeholderResearchScientist), "report audience: research_scientist, product_trainer or dx_professional")
	asJSON := flag.Bool("json", false, "print the synthesis record as JSON instead of a rendered report")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	if *inputPath == "" {
		log.Fatal().Msg("missing -input flag")
	}

	kind := entities.StakeholderKind(*stakeholder)
	if !kind.IsValid() {
		log.Fatal().Str("stakeholder", *stakeholder).Msg("unknown stakeholder kind")
	}

	registry := paradigm.NewRegistry()
	edges := mapping.DefaultEdges()
	if loaded, err := mapping.LoadEdges(cfg.Engine.ConceptMappingsPath); err == nil {
		edges = loaded
	}
	mapper, err := mapping.NewMapper(registry, edges, mapping.WithSuggestionLimit(cfg.Engine.SuggestionLimit))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build concept mapper")
	}

	ctx := context.Background()

	opts := []services.SynthesisServiceOption{}
	if cfg.OTEL.Enabled {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up telemetry")
		}
		defer shutdown(ctx)

		metrics, err := observability.InitMetrics()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize metrics")
		}
		opts = append(opts, services.WithMetrics(metrics))
	}
	if cfg.Engine.HistoryEnabled {
		pgClient, err := postgresclient.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pgClient.Close()
		opts = append(opts, services.WithHistory(database.NewSynthesisHistoryAdapter(pgClient)))

		redisClient, err := redisclient.NewClient(&cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		opts = append(opts, services.WithReportCache(cache.NewRedisAdapter(redisClient), cfg.Engine.ReportCacheTTLSeconds))
	}

	service := services.NewSynthesisService(
		grading.NewGrader(registry),
		synthesis.NewSynthesizer(registry, mapper),
		report.NewRenderer(),
		opts...,
	)

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inputPath).Msg("failed to read input file")
	}
	var request synthesisRequest
	if err := json.Unmarshal(data, &request); err != nil {
		log.Fatal().Err(err).Msg("failed to parse synthesis request")
	}

	record, err := service.Synthesize(ctx, request.Hypothesis, request.Mineral, request.Submissions)
	if err != nil {
		log.Fatal().Err(err).Msg("synthesis failed")
	}

	if *asJSON {
		out, _ := json.MarshalIndent(record, "", "  ")
		fmt.Println(string(out))
		return
	}

	text, err := service.Report(ctx, record, kind)
	if err != nil {
		log.Fatal().Err(err).Msg("rendering failed")
	}
	fmt.Println(text)
}
