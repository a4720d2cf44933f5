// Command harvester runs a full corpus harvest described by a job file:
// category membership matrix, redirect resolution, concurrent article
// fetch, link-graph similarity scoring against the seed articles, and
// section-heading statistics, all written as JSON into the output
// directory.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"wikicorpus/internal/corpus"
	"wikicorpus/internal/observability/logging"
	"wikicorpus/internal/runid"
	"wikicorpus/internal/wiki"
	"wikicorpus/pkg/config"
	"wikicorpus/pkg/ratelimit"
)

func main() {
	if err := run(); err != nil {
		slog.Error("harvest failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	jobPath := flag.String("job", "job.yaml", "path to the harvest job file")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = runid.NewContext(ctx)
	logger = logging.WithRunID(ctx, logger)

	tracerProvider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tracerProvider)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	job, err := LoadJob(*jobPath)
	if err != nil {
		return err
	}

	limiter, err := ratelimit.New(ratelimit.Config{
		Rate:    config.GetEnvFloat64("WIKI_RATE_LIMIT", ratelimit.DefaultRate),
		Burst:   config.GetEnvInt("WIKI_RATE_BURST", ratelimit.DefaultBurst),
		Metrics: ratelimit.NewPrometheusMetrics(prometheus.DefaultRegisterer),
	})
	if err != nil {
		return err
	}

	client, err := wiki.NewClient(wiki.Config{
		UserAgent: config.GetEnvString("WIKI_USER_AGENT", ""),
		Timeout:   config.GetEnvDuration("WIKI_TIMEOUT", 30*time.Second),
		Limiter:   limiter,
	})
	if err != nil {
		return err
	}

	return harvest(ctx, logger, client, job)
}

func harvest(ctx context.Context, logger *slog.Logger, client *wiki.Client, job *Job) error {
	started := time.Now()
	ns, err := job.namespace()
	if err != nil {
		return err
	}

	logger.Info("harvest starting",
		slog.String("lang", job.Lang),
		slog.Int("categories", len(job.Categories)),
		slog.Int("depth", job.Depth))

	memberMatrix, err := client.CategoryMemberMatrix(ctx, job.Categories, job.Depth, job.Lang, ns, job.MaxConcurrency)
	if err != nil {
		return fmt.Errorf("category matrix: %w", err)
	}
	members := memberMatrix.ColLabels()
	logger.Info("category members collected", slog.Int("members", len(members)))

	redirects, err := client.ResolveRedirects(ctx, members, job.Lang, job.MaxConcurrency)
	if err != nil {
		return fmt.Errorf("resolve redirects: %w", err)
	}
	titles := corpus.OverwriteRedirects(members, redirects)

	batch, err := client.Articles(ctx, titles, job.Lang, job.MaxConcurrency)
	if err != nil {
		return fmt.Errorf("fetch articles: %w", err)
	}
	logger.Info("articles fetched",
		slog.Int("harvested", len(batch.Articles)),
		slog.Int("missing", len(batch.Missing)))

	relations, err := linkRelations(ctx, client, batch.Articles, job)
	if err != nil {
		return fmt.Errorf("link graph: %w", err)
	}
	linkMatrix := corpus.BuildMatrix(relations)

	inAll, inSeeds := corpus.InDegrees(linkMatrix, job.Seeds)
	similarity := corpus.ComputeSeedSimilarity(linkMatrix, inAll, inSeeds)
	logger.Info("similarity computed",
		slog.Int("columns_used", similarity.ColumnsUsed),
		slog.Int("columns_dropped", similarity.ColumnsDropped))

	texts := make([]string, len(batch.Articles))
	for i, article := range batch.Articles {
		texts[i] = article.Text
	}
	if len(job.CutHeadings) > 0 {
		texts = corpus.CutArticlesAtHeadings(texts, job.CutHeadings)
	}
	headings := corpus.TopHeadings(corpus.CountHeadings(texts), job.TopHeadings)

	if err := writeOutputs(job.OutputDir, batch, similarity, headings); err != nil {
		return err
	}

	logger.Info("harvest finished",
		slog.Duration("elapsed", time.Since(started)),
		slog.String("output_dir", job.OutputDir))
	return nil
}

// linkRelations fetches each article's outgoing links with bounded
// concurrency, keeping article order.
func linkRelations(ctx context.Context, client *wiki.Client, articles []wiki.Article, job *Job) ([]corpus.Relation, error) {
	relations := make([]corpus.Relation, len(articles))

	eg, egCtx := errgroup.WithContext(ctx)
	limit := job.MaxConcurrency
	if limit <= 0 {
		limit = wiki.DefaultMaxConcurrency
	}
	eg.SetLimit(limit)

	for i, article := range articles {
		i, article := i, article
		eg.Go(func() error {
			targets, err := client.LinkTitles(egCtx, article.Title, wiki.LinkOutgoing, job.Lang, nil)
			if err != nil {
				return err
			}
			relations[i] = corpus.Relation{Label: article.Title, Targets: targets}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return relations, nil
}

func writeOutputs(dir string, batch wiki.ArticleBatch, similarity *corpus.SeedSimilarity, headings []corpus.HeadingFrequency) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	outputs := map[string]any{
		"articles.json":   batch.Articles,
		"missing.json":    batch.Missing,
		"similarity.json": similarity,
		"headings.json":   headings,
	}
	for name, value := range outputs {
		if err := writeJSON(filepath.Join(dir, name), value); err != nil {
			return err
		}
	}
	return writeScoresCSV(filepath.Join(dir, "similarity.csv"), similarity.Scores)
}

// writeScoresCSV exports the similarity scores as title,score rows in
// descending score order.
func writeScoresCSV(path string, scores map[string]float64) error {
	titles := make([]string, 0, len(scores))
	for title := range scores {
		titles = append(titles, title)
	}
	sort.Slice(titles, func(i, j int) bool {
		if scores[titles[i]] != scores[titles[j]] {
			return scores[titles[i]] > scores[titles[j]]
		}
		return titles[i] < titles[j]
	})

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"title", "score"}); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, title := range titles {
		record := []string{title, strconv.FormatFloat(scores[title], 'f', 6, 64)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeJSON(path string, value any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
