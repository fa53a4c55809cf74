package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/subosito/gotenv"

	"projgen/agent"
	"projgen/config"
	"projgen/provider"
	"projgen/tools"
	"projgen/ui"
)

const (
	mainPrompt      = `> What do you want me to create? (type "exit" to quit): `
	failureResponse = "Error: Failed to get a proper response from the AI assistant."
)

func main() {
	// .env is optional; exported variables win over it
	_ = gotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logCloser := config.InitDebugLog(config.GetCacheDir())
	defer logCloser.Close()

	printer := ui.NewPrinter(os.Stdout)
	printer.Banner(true)

	choice := provider.MapProviderIDToType(cfg.Provider)
	if cfg.Provider == "" {
		selected, ok, err := ui.SelectProvider(provider.SupportedProviders(), os.Stdin, os.Stdout)
		if err != nil {
			fmt.Printf("Error running provider menu: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Println("Invalid choice. Exiting.")
			return
		}
		choice = selected
	}

	llm, err := provider.InitializeProvider(cfg, choice)
	if err != nil {
		printer.Error(err.Error())
		os.Exit(1)
	}

	outputDir, err := filepath.Abs(config.ExpandPath(cfg.OutputDir))
	if err != nil {
		fmt.Printf("Invalid output directory %q: %v\n", cfg.OutputDir, err)
		os.Exit(1)
	}

	registry, err := tools.NewBuiltinRegistry(tools.Options{
		OutputDir:      outputDir,
		CommandTimeout: cfg.CommandTimeout,
		Stdout:         os.Stdout,
	})
	if err != nil {
		fmt.Printf("Failed to register tools: %v\n", err)
		os.Exit(1)
	}

	systemPrompt, err := agent.LoadSystemPrompt(cfg.SystemPromptFile, registry)
	if err != nil {
		fmt.Printf("Failed to load system prompt: %v\n", err)
		os.Exit(1)
	}

	prompter := ui.NewPrompter(os.Stdin, os.Stdout)
	loop := &agent.Loop{
		Client:          llm,
		Registry:        registry,
		Reporter:        printer,
		Input:           ui.StepInput{Prompter: prompter},
		OutputDir:       outputDir,
		MaxParseRetries: cfg.MaxParseRetries,
		ParseRetryDelay: cfg.ParseRetryDelay,
	}

	for {
		query, err := prompter.ReadLine(mainPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			printer.Goodbye()
			return
		}
		if err != nil {
			fmt.Printf("Failed to read input: %v\n", err)
			os.Exit(1)
		}

		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "exit") {
			printer.Goodbye()
			return
		}

		printer.Processing()
		result, err := runRequest(loop, systemPrompt, query)
		if err != nil {
			printer.Error(err.Error())
			result = failureResponse
		}
		printer.Response(result)

		if err == nil && cfg.CopyResultToClipboard {
			if cerr := clipboard.WriteAll(result); cerr != nil && config.Debug {
				config.DebugLog.Debug().Err(cerr).Msg("clipboard copy failed")
			}
		}
	}
}

// runRequest runs one request with Ctrl-C bound to its context, so an interrupt
// abandons the request and returns to the prompt.
func runRequest(loop *agent.Loop, systemPrompt, query string) (string, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return loop.Run(ctx, systemPrompt, query)
}
