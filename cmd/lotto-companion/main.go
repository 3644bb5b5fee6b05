// Package main provides the lotto-companion command line interface.
// It imports historical draw files, builds the statistic tables, generates
// filtered combinations and exports results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ramonehamilton/lotto-companion/internal/analysis"
	"github.com/ramonehamilton/lotto-companion/internal/charts"
	"github.com/ramonehamilton/lotto-companion/internal/config"
	"github.com/ramonehamilton/lotto-companion/internal/draw"
	"github.com/ramonehamilton/lotto-companion/internal/events"
	"github.com/ramonehamilton/lotto-companion/internal/export"
	"github.com/ramonehamilton/lotto-companion/internal/filter"
	"github.com/ramonehamilton/lotto-companion/internal/generator"
	"github.com/ramonehamilton/lotto-companion/internal/ingest"
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
	"github.com/ramonehamilton/lotto-companion/internal/storage"
	"github.com/ramonehamilton/lotto-companion/internal/storage/models"
	"github.com/ramonehamilton/lotto-companion/internal/storage/repository"
	"github.com/ramonehamilton/lotto-companion/internal/version"
)

func main() {
	log.SetFlags(log.LstdFlags)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] Failed to load configuration: %v", err)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "import":
		err = runImport(cfg, args)
	case "generate":
		err = runGenerate(cfg, args)
	case "stats":
		err = runStats(cfg, args)
	case "export":
		err = runExport(cfg, args)
	case "watch":
		err = runWatch(cfg, args)
	case "version":
		fmt.Printf("lotto-companion %s\n", version.GetVersion())
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("[Main] %s failed: %v", command, err)
	}
}

func usage() {
	fmt.Println("Lotto Companion - draw statistics and combination generator")
	fmt.Println()
	fmt.Println("Usage: lotto-companion <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  import     Import a historical draw file into the local database")
	fmt.Println("  generate   Generate combinations using a drawing strategy")
	fmt.Println("  stats      Export statistic tables and distribution charts")
	fmt.Println("  export     Export stored combinations to CSV or JSON")
	fmt.Println("  watch      Watch the history file and rebuild tables on change")
	fmt.Println("  version    Print the application version")
}

// openDatabase opens the SQLite database, creating and migrating it as
// needed. The caller owns the returned handle.
func openDatabase(cfg *config.Config) (*storage.DB, error) {
	path := cfg.Database.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".lotto-companion", "data.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dbConfig := storage.DefaultConfig(path)
	dbConfig.AutoMigrate = true
	return storage.Open(dbConfig)
}

func runImport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	filePath := fs.String("file", cfg.Data.FilePath, "History file to import")
	url := fs.String("url", cfg.Data.URL, "Download URL (used when -file is empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()

	if *filePath == "" && *url != "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		*filePath = filepath.Join(home, ".lotto-companion", "history.csv")

		log.Printf("[Import] Downloading %s", *url)
		downloader := ingest.NewDownloader(nil)
		if err := downloader.FetchToFile(ctx, *url, *filePath); err != nil {
			return fmt.Errorf("download history: %w", err)
		}
	}
	if *filePath == "" {
		return fmt.Errorf("no history file configured (use -file or -url)")
	}

	records, skipped, err := parseHistoryFile(cfg, *filePath)
	if err != nil {
		return err
	}
	log.Printf("[Import] Parsed %d draws (%d lines skipped)", len(records), skipped)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[Import] Error closing database: %v", err)
		}
	}()

	draws := make([]*models.Draw, len(records))
	for i, r := range records {
		draws[i] = &models.Draw{Date: r.Date, Numbers: r.Numbers, Stars: r.Stars}
	}

	drawRepo := repository.NewDrawRepository(db.Conn())
	if err := drawRepo.BulkInsert(ctx, draws); err != nil {
		return fmt.Errorf("store draws: %w", err)
	}

	count, err := drawRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count draws: %w", err)
	}
	fmt.Printf("Imported %d draws (%d total in database)\n", len(draws), count)
	return nil
}

func runGenerate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	strategyName := fs.String("strategy", string(lottery.StrategySimpleList), "Drawing strategy")
	count := fs.Int("count", 1, "Number of combinations to generate")
	preferredFlag := fs.String("numbers", "", "Comma-separated candidate numbers for list strategies")
	save := fs.Bool("save", false, "Persist generated combinations to the database")
	if err := fs.Parse(args); err != nil {
		return err
	}

	strategy := lottery.Strategy(*strategyName)
	if !strategy.Valid() {
		return fmt.Errorf("%w: %q (known: %s)", lottery.ErrUnknownStrategy, *strategyName, strategyNames())
	}

	preferred, err := parseNumberList(*preferredFlag)
	if err != nil {
		return fmt.Errorf("parse -numbers: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, history, err := buildDrawService(ctx, cfg)
	if err != nil {
		return err
	}

	if !service.Ready() && strategy != lottery.StrategySimpleList && strategy != lottery.StrategyUserList {
		if !cfg.Generator.AllowFallback {
			return fmt.Errorf("%w: strategy %q needs imported history (run import first)", lottery.ErrServiceNotReady, strategy)
		}
		log.Printf("[Generate] No history loaded, falling back to %s", lottery.StrategySimpleList)
		strategy = lottery.StrategySimpleList
	}

	toggles := filterToggles(cfg)
	pipeline := filter.NewPipeline(toggles, history)

	dispatcher := events.NewDispatcher()
	dispatcher.Register(&progressObserver{})

	gen := generator.New(service, pipeline,
		generator.WithMaxAttempts(cfg.Generator.MaxAttempts),
		generator.WithPause(cfg.Generator.PauseEvery, time.Duration(cfg.Generator.PauseMillis)*time.Millisecond),
		generator.WithStarCount(cfg.Generator.StarCount),
		generator.WithDispatcher(dispatcher),
	)

	result, err := gen.Generate(ctx, *count, strategy, preferred)
	if err != nil {
		return err
	}

	if result.PartialSuccess {
		log.Printf("[Generate] Retry budget reached: %d of %d combinations generated",
			len(result.Combinations), *count)
	}

	fmt.Printf("Generated %d combination(s) in %d attempts:\n", len(result.Combinations), result.Attempts)
	for i, c := range result.Combinations {
		fmt.Printf("  %2d. %s\n", i+1, c.String())
	}

	if *save {
		if err := saveCombinations(ctx, cfg, result.Combinations); err != nil {
			return err
		}
		fmt.Println("Saved to database.")
	}
	return nil
}

func runStats(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	outDir := fs.String("out", ".", "Output directory for tables and charts")
	format := fs.String("format", "csv", "Table export format: csv or json")
	renderCharts := fs.Bool("charts", true, "Render distribution charts as HTML")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	service, history, err := buildDrawService(ctx, cfg)
	if err != nil {
		return err
	}
	if !service.Ready() {
		return fmt.Errorf("%w: no imported history (run import first)", lottery.ErrServiceNotReady)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	exportFormat := export.Format(*format)
	tables := map[string]lottery.DrawTable{
		"distances": service.Distances(),
		"weights":   service.Weights(),
	}
	for name, table := range tables {
		path := filepath.Join(*outDir, name+"."+*format)
		opts := export.Options{Format: exportFormat, FilePath: path, PrettyJSON: true, Overwrite: true}
		if err := export.ExportTable(table, opts); err != nil {
			return fmt.Errorf("export %s table: %w", name, err)
		}
		log.Printf("[Stats] Wrote %s", path)
	}

	dist := analysis.TableDistribution(history, lottery.MaxNumber)
	distPath := filepath.Join(*outDir, "distribution."+*format)
	opts := export.Options{Format: exportFormat, FilePath: distPath, PrettyJSON: true, Overwrite: true}
	if err := export.ExportDistribution(dist, opts); err != nil {
		return fmt.Errorf("export distribution: %w", err)
	}
	log.Printf("[Stats] Wrote %s", distPath)

	if *renderCharts {
		chartPath := filepath.Join(*outDir, "distribution.html")
		chartConfig := charts.DefaultConfig("Number frequency")
		chartConfig.XAxisLabel = "number"
		chartConfig.YAxisLabel = "draws"
		if err := charts.RenderDistribution(dist, chartConfig, chartPath); err != nil {
			return fmt.Errorf("render distribution chart: %w", err)
		}
		log.Printf("[Stats] Wrote %s", chartPath)

		rowPatterns, _ := analysis.GridPatternDistribution(history, 10, 5, lottery.DrawSize)
		patternPath := filepath.Join(*outDir, "grid-patterns.html")
		if err := charts.RenderGridPatterns(rowPatterns, charts.DefaultConfig("Grid patterns (10x5)"), patternPath); err != nil {
			return fmt.Errorf("render grid pattern chart: %w", err)
		}
		log.Printf("[Stats] Wrote %s", patternPath)

		sums := make([]int, len(history))
		for i, row := range history {
			for _, n := range row {
				sums[i] += n
			}
		}
		trendPath := filepath.Join(*outDir, "draw-sums.html")
		trendConfig := charts.DefaultConfig("Draw sum trend")
		trendConfig.XAxisLabel = "draw (most recent first)"
		trendConfig.YAxisLabel = "sum"
		if err := charts.RenderTrend("sum", sums, trendConfig, trendPath); err != nil {
			return fmt.Errorf("render trend chart: %w", err)
		}
		log.Printf("[Stats] Wrote %s", trendPath)
	}

	return nil
}

func runExport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	outPath := fs.String("out", "combinations.csv", "Output file path")
	format := fs.String("format", "csv", "Export format: csv or json")
	overwrite := fs.Bool("overwrite", false, "Overwrite the output file if it exists")
	password := fs.String("encrypt", "", "Encrypt the export with this password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[Export] Error closing database: %v", err)
		}
	}()

	ctx := context.Background()
	repo := repository.NewCombinationRepository(db.Conn())

	opts := export.Options{
		Format:     export.Format(*format),
		FilePath:   *outPath,
		PrettyJSON: true,
		Overwrite:  *overwrite,
	}
	if err := export.ExportCombinations(ctx, repo, opts); err != nil {
		return err
	}

	if *password != "" {
		encrypted := *outPath + ".enc"
		if err := storage.EncryptFile(*outPath, encrypted, *password); err != nil {
			return fmt.Errorf("encrypt export: %w", err)
		}
		if err := os.Remove(*outPath); err != nil {
			return fmt.Errorf("remove plaintext export: %w", err)
		}
		fmt.Printf("Exported to %s (encrypted)\n", encrypted)
		return nil
	}

	fmt.Printf("Exported to %s\n", *outPath)
	return nil
}

func runWatch(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	filePath := fs.String("file", cfg.Data.FilePath, "History file to watch")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *filePath == "" {
		return fmt.Errorf("no history file configured (use -file)")
	}

	dispatcher := events.NewDispatcher()
	dispatcher.Register(&progressObserver{})

	service := draw.NewService(nil, tuning(cfg))
	rebuild := func() {
		records, skipped, err := parseHistoryFile(cfg, *filePath)
		if err != nil {
			log.Printf("[Watch] Reload failed: %v", err)
			return
		}
		table, stars := ingest.Tables(records)
		if err := service.SetHistory(table, stars, cfg.Analysis.DistanceWindow); err != nil {
			log.Printf("[Watch] Rebuild failed: %v", err)
			return
		}
		dispatcher.Dispatch(events.Event{Type: events.TypeTablesRebuilt, Data: len(records)})
		log.Printf("[Watch] Tables rebuilt from %d draws (%d lines skipped)", len(records), skipped)
	}
	rebuild()

	watcher, err := ingest.NewWatcher(*filePath, rebuild)
	if err != nil {
		return fmt.Errorf("watch %s: %w", *filePath, err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Printf("[Watch] Error closing watcher: %v", err)
		}
	}()

	fmt.Printf("Watching %s, press Ctrl+C to stop\n", *filePath)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("Stopped.")
	return nil
}

// buildDrawService loads the stored draw history, most recent first, and
// prepares the drawing service. With an empty database the service comes
// back not ready and only the list strategies work.
func buildDrawService(ctx context.Context, cfg *config.Config) (*draw.Service, lottery.DrawTable, error) {
	service := draw.NewService(nil, tuning(cfg))

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[Main] Error closing database: %v", err)
		}
	}()

	drawRepo := repository.NewDrawRepository(db.Conn())
	stored, err := drawRepo.LoadAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load draws: %w", err)
	}
	if len(stored) == 0 {
		return service, nil, nil
	}

	records := make([]lottery.DrawRecord, len(stored))
	for i, d := range stored {
		records[i] = lottery.DrawRecord{Date: d.Date, Numbers: d.Numbers, Stars: d.Stars}
	}

	table, stars := ingest.Tables(records)
	if err := service.SetHistory(table, stars, cfg.Analysis.DistanceWindow); err != nil {
		return nil, nil, fmt.Errorf("build statistic tables: %w", err)
	}
	log.Printf("[Main] Loaded %d draws, distance window %d", len(table), service.Window())
	return service, table, nil
}

func saveCombinations(ctx context.Context, cfg *config.Config, combinations []lottery.Combination) error {
	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[Generate] Error closing database: %v", err)
		}
	}()

	repo := repository.NewCombinationRepository(db.Conn())
	for _, c := range combinations {
		record := &models.Combination{
			Strategy: string(c.Strategy),
			Numbers:  c.Numbers,
			Stars:    c.Stars,
		}
		if err := repo.Save(ctx, record); err != nil {
			return fmt.Errorf("save combination: %w", err)
		}
	}
	return nil
}

func parseHistoryFile(cfg *config.Config, path string) ([]lottery.DrawRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	parser := ingest.NewParser()
	if cfg.Data.Separator != "" {
		parser.Separator = cfg.Data.Separator
	}
	return parser.Parse(f)
}

func filterToggles(cfg *config.Config) filter.Toggles {
	return filter.Toggles{
		NoDuplicate:  cfg.Filters.NoDuplicate,
		OddEven:      cfg.Filters.OddEven,
		Grid10x5:     cfg.Filters.Grid10x5,
		Grid5x10:     cfg.Filters.Grid5x10,
		NoLongRuns:   cfg.Filters.NoLongRuns,
		MatchProfile: cfg.Filters.MatchProfile,
	}
}

func tuning(cfg *config.Config) draw.Tuning {
	t := draw.DefaultTuning()
	if cfg.Generator.TopShare > 0 {
		t.TopShare = cfg.Generator.TopShare
	}
	if cfg.Generator.NextMaxShare > 0 {
		t.NextMaxShare = cfg.Generator.NextMaxShare
	}
	return t
}

func parseNumberList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func strategyNames() string {
	names := make([]string, 0, len(lottery.Strategies()))
	for _, s := range lottery.Strategies() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// progressObserver logs generation progress events.
type progressObserver struct{}

func (o *progressObserver) Name() string { return "progress" }

func (o *progressObserver) ShouldHandle(eventType string) bool { return true }

func (o *progressObserver) OnEvent(event events.Event) error {
	switch event.Type {
	case events.TypeGenerationStarted:
		if data, ok := event.Data.(generator.StartedData); ok {
			log.Printf("[Generator] Started: %d combination(s) via %s", data.Count, data.Strategy)
		}
	case events.TypeCombinationAccepted:
		if data, ok := event.Data.(generator.AcceptedData); ok {
			log.Printf("[Generator] Accepted %s (attempt %d)", data.Combination.String(), data.Attempt)
		}
	case events.TypeGenerationFinished:
		if data, ok := event.Data.(generator.FinishedData); ok {
			log.Printf("[Generator] Finished: %d accepted in %d attempts", data.Accepted, data.Attempts)
		}
	}
	return nil
}
