package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"go.uber.org/zap"

	"mocksh/internal/batch"
	"mocksh/internal/config"
	"mocksh/internal/logging"
	"mocksh/internal/metrics"
	"mocksh/internal/model"
	"mocksh/internal/seed"
	"mocksh/internal/shell"
	"mocksh/internal/tui"
	"mocksh/internal/vfs"
	"mocksh/internal/web"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "mocksh",
		Repository: "mocksh",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/mocksh/mocksh/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mocksh [options] [script]\n\n")
		fmt.Fprintf(os.Stderr, "mocksh is a pretend terminal over an in-memory file system.\n")
		fmt.Fprintf(os.Stderr, "Nothing it does touches the real disk; every session starts from the seed tree.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mocksh                        # Start the terminal UI\n")
		fmt.Fprintf(os.Stderr, "  mocksh --web                  # Serve the shell in a browser\n")
		fmt.Fprintf(os.Stderr, "  mocksh -b script.txt          # Run a script and print the transcript\n")
		fmt.Fprintf(os.Stderr, "  echo ls | mocksh -j -o t.json # Save the transcript as JSON\n")
		fmt.Fprintf(os.Stderr, "  mocksh --seed-dir ./project   # Start from a copy of a real directory\n")
	}

	webFlag := pflag.BoolP("web", "w", false, "Serve the shell over HTTP (address from config, default 127.0.0.1:8089)")
	batchFlag := pflag.BoolP("batch", "b", false, "Run lines from a script file or stdin and print the transcript")
	jsonFlag := pflag.BoolP("json", "j", false, "Like --batch but write the transcript as JSON")
	outputFlag := pflag.StringP("output", "o", "", "Write the batch transcript to the specified file")
	seedFlag := pflag.String("seed", "", "Load the starting tree from a YAML seed file")
	seedDirFlag := pflag.String("seed-dir", "", "Import the starting tree from a directory on disk")
	dumpSeedFlag := pflag.Bool("dump-seed", false, "Print the starting tree as YAML and exit")
	configFlag := pflag.StringP("config", "c", "", "Config file (default ~/.mocksh/config.yaml)")
	initConfigFlag := pflag.Bool("init-config", false, "Write a default config file if none exists")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("mocksh version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *initConfigFlag {
		path, err := config.EnsureDefaultConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config file: %s\n", path)
		return
	}

	cfg, cfgPath, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	batchMode := *batchFlag || *jsonFlag
	interactive := !*webFlag && !batchMode && !*dumpSeedFlag
	if err := logging.Init(logging.Config{
		Level:      cfg.LogLevel(),
		Format:     cfg.Log.Format,
		OutputPath: cfg.LogOutput(interactive),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()
	logging.Debug("config loaded", logging.String("path", cfgPath))

	seedFile, seedDir := cfg.Seed.File, cfg.Seed.Dir
	if *seedFlag != "" || *seedDirFlag != "" {
		seedFile, seedDir = *seedFlag, *seedDirFlag
	}
	root, err := loadSeed(seedFile, seedDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading seed: %v\n", err)
		os.Exit(1)
	}

	prompt := shell.Prompt{User: cfg.PromptUser(), Host: cfg.PromptHost()}

	switch {
	case *dumpSeedFlag:
		runDumpSeed(root)
	case *webFlag:
		runWebMode(root, prompt, cfg.WebAddr())
	case batchMode:
		runBatchMode(root, prompt, pflag.Arg(0), *outputFlag, *jsonFlag)
	default:
		runTuiMode(root, prompt, cfg)
	}
}

func loadSeed(file, dir string) (*vfs.Node, error) {
	switch {
	case file != "" && dir != "":
		return nil, fmt.Errorf("--seed and --seed-dir are mutually exclusive")
	case file != "":
		return seed.LoadFile(file)
	case dir != "":
		return seed.LoadDir(dir)
	}
	return seed.Default(), nil
}

func newSession(root *vfs.Node, prompt shell.Prompt, frontend string) *shell.Session {
	logger := logging.L().With(zap.String("frontend", frontend))
	return shell.NewSession(root,
		shell.WithPrompt(prompt),
		shell.WithObserver(metrics.ObserveResult),
		shell.WithObserver(func(r shell.Result) {
			logger.Debug("command executed",
				zap.String("kind", r.Kind.String()),
				zap.String("command", r.Entry.Command),
			)
		}),
	)
}

func runDumpSeed(root *vfs.Node) {
	b, err := seed.Marshal(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding seed: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(b)
}

func runWebMode(root *vfs.Node, prompt shell.Prompt, addr string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting mocksh web server at http://%s\n", addr)
	srv := web.NewServer(root, web.WithPrompt(prompt))
	if err := srv.Start(ctx, addr); err != nil {
		logging.Error("web server failed", logging.Err(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runBatchMode(root *vfs.Node, prompt shell.Prompt, script, outputFile string, asJSON bool) {
	var in io.Reader = os.Stdin
	if script != "" {
		f, err := os.Open(model.ExpandTilde(script))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	sess := newSession(root, prompt, "batch")
	metrics.SessionOpened("batch")
	defer metrics.SessionClosed()
	if err := batch.Run(in, sess); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := batch.Options{JSON: asJSON, Color: outputFile == "" && !color.NoColor}
	if outputFile == "" {
		if err := batch.Write(os.Stdout, sess, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	f, err := os.Create(outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing transcript to %s: %v\n", outputFile, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := batch.Write(f, sess, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing transcript to %s: %v\n", outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Transcript saved to %s (%s)\n", outputFile, batch.Summary(sess.Root()))
}

func runTuiMode(root *vfs.Node, prompt shell.Prompt, cfg *config.AppConfig) {
	var opts []tui.Option
	snippet, ok, err := cfg.LoadSnippet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if ok {
		opts = append(opts, tui.WithSnippet(snippet))
	}

	sess := newSession(root, prompt, tui.Frontend)
	metrics.SessionOpened(tui.Frontend)
	defer metrics.SessionClosed()
	if err := tui.Run(sess, opts...); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
