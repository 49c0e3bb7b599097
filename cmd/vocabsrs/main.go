package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/config"
	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/deck"
	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/domain"
	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/srs"
)

func main() {
	flags := pflag.NewFlagSet("vocabsrs", pflag.ExitOnError)
	configPath := flags.String("config", "", "Path to a YAML config file")
	// Flag defaults mirror config defaults so an unchanged flag never
	// masks a value from the config file or environment.
	flags.String("deck.dir", ".", "Directory to scan for deck markdown files")
	simulate := flags.String("simulate", "", "Comma-separated quality ratings (0-5) to replay on a fresh card")
	seed := flags.Int64("seed", 0, "Seed for the jitter random source (0 = wall clock)")
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	params := cfg.Scheduler.Params()
	schedCfg := srs.Config{
		Params:        &params,
		DisableJitter: cfg.Scheduler.DisableJitter,
	}
	if *seed != 0 {
		schedCfg.Rand = rand.New(rand.NewSource(*seed))
	}
	scheduler, err := srs.NewScheduler(schedCfg)
	if err != nil {
		slog.Error("Failed to build scheduler", "error", err)
		os.Exit(1)
	}

	if *simulate != "" {
		if err := runSimulation(scheduler, *simulate); err != nil {
			slog.Error("Simulation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	runSummary(scheduler, cfg)
}

// runSummary loads the deck, schedules every card as freshly initialized,
// and prints the due buckets, the most urgent cards and a daily goal.
func runSummary(scheduler *srs.Scheduler, cfg config.Config) {
	now := time.Now()

	cards, parseErrs := loadDeck(cfg.Deck.Dir, scheduler, now)
	slog.Info("Deck loaded", "dir", cfg.Deck.Dir, "cards", len(cards), "errors", len(parseErrs))
	for _, e := range parseErrs {
		slog.Warn("Deck file skipped", "error", e)
	}
	if len(cards) == 0 {
		slog.Info("No cards found. Add W:/T: entries to markdown files in the deck directory.")
		return
	}

	sum := srs.DueSummary(cards, now)
	fmt.Printf("Due now: %d, due today: %d, due this week: %d (of %d cards)\n",
		len(sum.DueNow), len(sum.DueToday), len(sum.DueThisWeek), len(cards))

	fmt.Println("\nMost urgent:")
	for i, c := range sum.Queue {
		if i == 10 {
			break
		}
		fmt.Printf("%2d. %-20s priority=%6.2f mastery=%3.0f difficulty=%s\n",
			i+1, c.Word, srs.Priority(c, now), c.MasteryScore, c.Difficulty)
	}

	goal := cfg.Goal.DailyGoal
	if goal == 0 {
		goal = srs.DailyGoal(len(cards), len(sum.DueNow),
			cfg.Goal.AvgSecondsPerCard, cfg.Goal.AvailableMinutes, cfg.Goal.AssumedAccuracy)
		fmt.Printf("\nRecommended daily goal: %d cards\n", goal)
	} else {
		fmt.Printf("\nDaily goal (user set): %d cards\n", goal)
	}
}

// loadDeck walks the directory and parses every markdown file into cards,
// each initialized for scheduling at the given time.
func loadDeck(dir string, scheduler *srs.Scheduler, now time.Time) ([]domain.Card, []error) {
	var cards []domain.Card
	var errs []error

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			fileCards, parseErr := deck.ParseFile(path)
			if parseErr != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", path, parseErr))
			}
			for _, card := range fileCards {
				cards = append(cards, scheduler.InitializeCard(card, now))
			}
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, fmt.Errorf("walking %s: %w", dir, walkErr))
	}
	return cards, errs
}

// runSimulation replays a quality sequence on a single fresh card, moving
// the clock to each next review, and prints the state after every step.
func runSimulation(scheduler *srs.Scheduler, sequence string) error {
	now := time.Now()
	card := domain.Card{Word: "example", Translation: "beispiel", Difficulty: domain.Intermediate}
	card = scheduler.InitializeCard(card, now)

	fmt.Println("step  quality     interval  ease  mastery  next review")
	for i, part := range strings.Split(sequence, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("quality %q: %w", part, err)
		}
		card, err = scheduler.Review(card, srs.Quality(n), now)
		if err != nil {
			return err
		}
		fmt.Printf("%4d  %-10s  %7dd  %.2f  %7.0f  in %.1f days\n",
			i+1, srs.Quality(n), card.Interval, card.EaseFactor, card.MasteryScore,
			card.NextReviewAt.Sub(now).Hours()/24)
		now = card.NextReviewAt // review again exactly when due
	}
	return nil
}
