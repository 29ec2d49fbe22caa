package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/popcorn/internal/catalog"
	"github.com/mmcdole/popcorn/internal/config"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/log"
	"github.com/mmcdole/popcorn/internal/service"
	"github.com/mmcdole/popcorn/internal/tui"
	"github.com/mmcdole/popcorn/internal/tui/styles"
	"github.com/mmcdole/popcorn/internal/watched"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: popcorn [-v] [query]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("popcorn %s\n", Version)
		return
	}

	if err := run(strings.Join(flag.Args(), " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(initialQuery string) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting popcorn", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	// Create catalog client
	repo, err := catalog.NewClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	// Create session owners
	search := service.NewSearchController(repo, cfg.Catalog.Timeout, cfg.Search.Debounce, logger)
	details := service.NewDetailsController(repo, cfg.Catalog.Timeout, logger)
	store := watched.NewStore()

	// Create TUI model
	model := tui.NewModel(search, details, store, tui.Options{
		AppTitle:     cfg.UI.AppTitle,
		MaxRating:    cfg.UI.MaxRating,
		InitialQuery: initialQuery,
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	// Teardown in case the program exited without the quit key
	search.Shutdown()
	details.Shutdown()

	logger.Info("shutting down")
	return nil
}

// runSetupFlow asks for an OMDb API key, verifies and saves it
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to usePopcorn!")
	fmt.Println()
	fmt.Println("An OMDb API key is required. Get a free one at https://www.omdbapi.com/apikey.aspx")
	fmt.Println()

	for {
		// Prompt for API key (hidden input)
		fmt.Print("API key: ")
		keyBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		fmt.Println() // Add newline after hidden input

		apiKey := strings.TrimSpace(string(keyBytes))
		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		cfg.Catalog.APIKey = apiKey

		fmt.Println()
		if err := verifyKeyWithSpinner(cfg, logger); err != nil {
			fmt.Printf("\n✗ %v\n", err)
			if errors.Is(err, domain.ErrInvalidAPIKey) {
				fmt.Println("Please check the key and try again.")
				fmt.Println()
				continue
			}
			return err
		}
		break
	}

	if err := config.SaveAPIKey(cfg.Catalog.APIKey); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run popcorn again to start the application.")

	return nil
}

// verifyKeyWithSpinner checks the API key against the catalog with a visual spinner
func verifyKeyWithSpinner(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resultCh := make(chan error, 1)

	// Start verification in background
	go func() {
		resultCh <- catalog.VerifyAPIKey(ctx, cfg, logger)
	}()

	// Spinner animation
	frame := 0

	// Print initial spinner
	fmt.Printf("\r%s Verifying API key...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			// Clear spinner line
			fmt.Print(clearSpinnerLine)

			if err != nil {
				return err
			}
			fmt.Println("✓ API key accepted")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Verifying API key...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("verification timed out")
		}
	}
}
