// Ratchet builds an application from a spec by chaining autonomous agent
// sessions: create or resume a project, drive its session loop until the
// roadmap completes or a halt condition fires, and report progress.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/pkg/agent"
	"github.com/ratchet-works/ratchet/pkg/bridge"
	"github.com/ratchet-works/ratchet/pkg/cleanup"
	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/database"
	"github.com/ratchet-works/ratchet/pkg/events"
	"github.com/ratchet-works/ratchet/pkg/guard"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/orchestrator"
	"github.com/ratchet-works/ratchet/pkg/review"
	"github.com/ratchet-works/ratchet/pkg/sandbox"
	"github.com/ratchet-works/ratchet/pkg/services"
	"github.com/ratchet-works/ratchet/pkg/version"
)

// specList collects repeated -spec flags in order.
type specList []string

func (s *specList) String() string { return strings.Join(*s, ",") }

func (s *specList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	var specs specList
	name := flag.String("name", "", "project name (required)")
	workspace := flag.String("workspace", "", "workspace directory (default <generations_dir>/<name>)")
	flag.Var(&specs, "spec", "spec file or directory, repeatable; parts are concatenated in order")
	iterations := flag.Int("iterations", 0, "coding sessions to run this invocation (0 = config default)")
	model := flag.String("model", "", "model for every session kind")
	initializerModel := flag.String("initializer-model", "", "model for the initializer session")
	codingModel := flag.String("coding-model", "", "model for coding sessions")
	configPath := flag.String("config", getEnv("RATCHET_CONFIG", ""), "configuration file (default: auto-detect .ratchet.yaml)")
	sandboxKind := flag.String("sandbox", "", "sandbox backend override: container, cloud or none")
	freshSandbox := flag.Bool("fresh-sandbox", false, "discard a surviving sandbox container instead of adopting it")
	force := flag.Bool("force", false, "replace an existing project with the same name")
	watch := flag.Bool("watch", false, "follow the project's event stream instead of running sessions")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	logger := slog.Default()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "ratchet: -name is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	slog.Info("Starting ratchet", "version", version.Full(), "project", *name)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	applyModelOverrides(cfg, *model, *initializerModel, *codingModel)
	if *sandboxKind != "" {
		switch kind := models.SandboxKind(*sandboxKind); kind {
		case models.SandboxContainer, models.SandboxCloud, models.SandboxNone:
			cfg.SandboxDefaults.Kind = kind
		default:
			slog.Error("Unknown sandbox kind", "sandbox", *sandboxKind)
			os.Exit(1)
		}
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	if health, err := dbClient.Health(ctx); err == nil {
		slog.Info("Connected to PostgreSQL database",
			"response_time_ms", health.ResponseTime, "max_open_conns", health.MaxOpenConns)
	}

	projects := services.NewProjectService(dbClient.Client, logger, cfg.Project.GenerationsDir)
	sessions := services.NewSessionService(dbClient.Client, logger)
	roadmap := services.NewRoadmapService(dbClient.Client, logger)
	quality := services.NewQualityService(dbClient.Client, logger)
	eventService := services.NewEventService(dbClient.Client)
	publisher := events.NewEventPublisher(dbClient.DB())
	slog.Info("Services initialized")

	if *watch {
		proj, err := projects.GetProjectByName(ctx, *name)
		if err != nil {
			slog.Error("Project not found", "name", *name, "error", err)
			os.Exit(1)
		}
		if err := watchProject(ctx, dbConfig, eventService, proj.ID); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
		return
	}

	proj, err := resolveProject(ctx, projects, cfg, resolveOptions{
		name:      *name,
		workspace: *workspace,
		specs:     specs,
		force:     *force,
		sandbox:   *sandboxKind,
	})
	if err != nil {
		slog.Error("Failed to resolve project", "name", *name, "error", err)
		os.Exit(1)
	}

	agentClient := agent.NewCLIClient(cfg.Agent, os.Getenv("AGENT_AUTH_TOKEN"), logger)

	host := bridge.NewHost(logger)
	if err := host.Start(); err != nil {
		slog.Error("Failed to start tool bridge host", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := host.Close(context.Background()); err != nil {
			slog.Error("Error closing tool bridge host", "error", err)
		}
	}()

	gate := guard.NewGate(cfg.Guard.ExtraDenyPatterns)
	sandboxes := sandbox.NewManager(gate, cfg.SandboxDefaults, logger)
	analyzer := review.NewAnalyzer(cfg.Review, cfg.Models.Review, quality, sessions, agentClient, publisher, logger)

	orch := orchestrator.New(cfg, projects, sessions, roadmap, sandboxes, host, agentClient, analyzer, publisher, logger)
	if err := orch.RecoverStartup(ctx); err != nil {
		slog.Error("Startup recovery failed", "error", err)
		os.Exit(1)
	}

	cleaner := cleanup.NewService(cfg.Retention, sessions, eventService)
	cleaner.Start(ctx)
	defer cleaner.Stop()

	// Mirror the project's event stream to the console while the loop runs,
	// over the same NOTIFY path external dashboards use.
	stopFeed, err := startConsoleFeed(ctx, dbConfig, roadmap, proj.ID, *verbose)
	if err != nil {
		slog.Warn("Console event feed unavailable", "error", err)
	} else {
		defer stopFeed()
	}

	// First SIGINT/SIGTERM cancels the loop; the in-flight session finalizes
	// as cancelled and its sandbox is stopped. A second signal exits hard.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("Shutdown signal received, cancelling session loop", "signal", sig)
		orch.Cancel(proj.ID)
		sig = <-sigCh
		slog.Warn("Second signal, exiting immediately", "signal", sig)
		os.Exit(1)
	}()

	result, err := orch.RunProject(ctx, proj.ID, orchestrator.RunOptions{
		Iterations:   *iterations,
		FreshSandbox: *freshSandbox,
	})
	if err != nil {
		slog.Error("Session loop failed", "error", err)
		analyzer.Wait()
		os.Exit(1)
	}

	// Let queued deep reviews land before reporting.
	analyzer.Wait()
	printSummary(proj, result)
}

// applyModelOverrides layers flag model selections over the configuration.
// -model covers every kind; the kind-specific flags win over it.
func applyModelOverrides(cfg *config.Config, all, initializer, coding string) {
	if all != "" {
		cfg.Models.Initializer = all
		cfg.Models.Coding = all
		cfg.Models.Review = all
	}
	if initializer != "" {
		cfg.Models.Initializer = initializer
	}
	if coding != "" {
		cfg.Models.Coding = coding
	}
}

type resolveOptions struct {
	name      string
	workspace string
	specs     []string
	force     bool
	sandbox   string
}

// resolveProject fetches the named project or creates it. With -force an
// existing project is replaced and its spec file rewritten; a -sandbox
// override on an existing project is persisted to its policy.
func resolveProject(ctx context.Context, projects *services.ProjectService, cfg *config.Config, opts resolveOptions) (*ent.Project, error) {
	existing, err := projects.GetProjectByName(ctx, opts.name)
	if err != nil && services.KindOf(err) != services.KindNotFound {
		return nil, err
	}

	if existing != nil && !opts.force {
		slog.Info("Resuming project",
			"project_id", existing.ID, "name", existing.Name, "workspace", existing.Workspace)
		if opts.sandbox != "" && existing.SandboxPolicy.Kind != models.SandboxKind(opts.sandbox) {
			policy := existing.SandboxPolicy
			policy.Kind = models.SandboxKind(opts.sandbox)
			return projects.UpdateSandboxPolicy(ctx, existing.ID, policy)
		}
		return existing, nil
	}

	specPaths := opts.specs
	if len(specPaths) == 0 && cfg.Project.DefaultSpecPath != "" {
		specPaths = []string{cfg.Project.DefaultSpecPath}
	}
	policy := cfg.SandboxDefaults
	return projects.CreateProject(ctx, models.CreateProjectInput{
		Name:      opts.name,
		Workspace: opts.workspace,
		SpecPaths: specPaths,
		Policy:    &policy,
		Force:     opts.force,
	})
}

// openEventStream builds the LISTEN pipeline and subscribes to a project's
// channel. With catchup, stored history is replayed before live delivery.
func openEventStream(ctx context.Context, dbConfig database.Config, eventService *services.EventService, projectID string, catchup bool) (*events.Subscription, func(), error) {
	var querier events.CatchupQuerier
	if catchup {
		querier = events.NewEventServiceAdapter(eventService)
	}
	broker := events.NewBroker(querier)
	listener := events.NewNotifyListener(dbConfig.DSN(), broker)
	if err := listener.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start LISTEN connection: %w", err)
	}
	broker.SetListener(listener)

	sub, err := broker.Subscribe(ctx, events.ProjectChannel(projectID), 0)
	if err != nil {
		listener.Stop(context.Background())
		return nil, nil, err
	}
	stop := func() {
		sub.Close()
		listener.Stop(context.Background())
	}
	return sub, stop, nil
}

// watchProject follows a project's event stream on stdout until interrupted.
// Raw JSON payloads, one per line; history is replayed first so a watcher
// joining mid-run sees how the run got here.
func watchProject(ctx context.Context, dbConfig database.Config, eventService *services.EventService, projectID string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sub, closeStream, err := openEventStream(ctx, dbConfig, eventService, projectID, true)
	if err != nil {
		return err
	}
	defer closeStream()

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-sub.Events():
			if !ok {
				return errors.New("event stream closed, resubscribe to continue")
			}
			fmt.Println(string(payload))
		}
	}
}

// startConsoleFeed renders lifecycle events as console lines while the loop
// runs. A feed failure costs only the live view, never the loop itself.
func startConsoleFeed(ctx context.Context, dbConfig database.Config, roadmap *services.RoadmapService, projectID string, verbose bool) (func(), error) {
	sub, closeStream, err := openEventStream(ctx, dbConfig, nil, projectID, false)
	if err != nil {
		return nil, err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for payload := range sub.Events() {
			renderEvent(ctx, roadmap, projectID, payload, verbose)
		}
	}()
	return func() {
		closeStream()
		<-done
	}, nil
}

// renderEvent turns one event payload into a console line.
func renderEvent(ctx context.Context, roadmap *services.RoadmapService, projectID string, payload []byte, verbose bool) {
	var evt map[string]any
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	str := func(key string) string {
		v, _ := evt[key].(string)
		return v
	}
	num := func(key string) int {
		v, _ := evt[key].(float64)
		return int(v)
	}

	switch str("type") {
	case events.EventTypeSessionStarted:
		fmt.Printf("session %d (%s) started, model %s\n", num("session_number"), str("kind"), str("model"))
	case events.EventTypeSessionStatus:
		line := fmt.Sprintf("session %d %s", num("session_number"), str("status"))
		if reason := str("failure_reason"); reason != "" {
			line += ": " + reason
		}
		fmt.Println(line)
		if progress, err := roadmap.Progress(ctx, projectID); err == nil {
			fmt.Println("  progress: " + formatProgress(progress))
		}
	case events.EventTypeTaskStatus:
		fmt.Printf("  task %s %s\n", shortID(str("task_id")), str("status"))
	case events.EventTypeQualityAttached:
		fmt.Printf("  quality (%s): %d/10\n", str("check_type"), num("rating"))
	case events.EventTypeAgentActivity:
		if verbose {
			fmt.Printf("  [%d] %s\n", num("tool_use_count"), str("tool_name"))
		}
	}
}

func formatProgress(p *models.Progress) string {
	return fmt.Sprintf("epics %d/%d, tasks %d/%d, tests %d/%d passing (%.0f%%)",
		p.CompletedEpics, p.TotalEpics,
		p.CompletedTasks, p.TotalTasks,
		p.PassedTests, p.TotalTests,
		p.Percent)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// printSummary reports the run outcome on stdout once the loop halts.
func printSummary(proj *ent.Project, result *orchestrator.RunResult) {
	fmt.Printf("\nProject %s halted: %s (%d sessions, %d coding)\n",
		proj.Name, result.Halt, result.SessionsRun, result.CodingRuns)
	if result.Progress != nil {
		fmt.Println("Final progress: " + formatProgress(result.Progress))
	}
	switch result.Halt {
	case orchestrator.HaltInitializer:
		fmt.Println("Roadmap created. Review it, then run again to start coding sessions.")
	case orchestrator.HaltRoadmapDone:
		fmt.Println("All tasks complete.")
	case orchestrator.HaltFailures:
		fmt.Println("Stopped after repeated session failures; check the session logs.")
	}
}
