package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mrred-labs/redterm/infra/auth"
	"github.com/mrred-labs/redterm/infra/config"
	"github.com/mrred-labs/redterm/infra/lens"
	"github.com/mrred-labs/redterm/infra/logging"
	"github.com/mrred-labs/redterm/tui"
)

var version = "dev"

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", args[0])
	}
}

func usage() string {
	return "Usage: redterm [--version|-version|-v] [--help|-h]"
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		fmt.Printf("redterm %s\n", version)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Build infrastructure. The terminal owns stdout from here on, so
	// diagnostics go to the log file.
	log, err := logging.New(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	tokens := auth.NewFileTokenProvider(cfg.TokenPath)
	session := auth.LoadSession(cfg.WalletPath, tokens)
	client := lens.NewClient(cfg.APIBaseURL, tokens)

	// 3. Build services (concrete types satisfy app.* interfaces).
	feedSvc := lens.NewFeedService(client, cfg.PageSize)
	publishSvc := lens.NewPublishService(client)
	commentSvc := lens.NewCommentService(client)
	mediaSvc := lens.NewMediaService(client)

	log.Info("starting redterm",
		zap.String("api", cfg.APIBaseURL),
		zap.Bool("authenticated", session.IsAuthenticated()))

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Feed:      feedSvc,
		Publish:   publishSvc,
		Reactions: publishSvc,
		Comments:  commentSvc,
		Uploader:  mediaSvc,
		Session:   session,
		Log:       log,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "redterm: %v\n", err)
		os.Exit(1)
	}
}
