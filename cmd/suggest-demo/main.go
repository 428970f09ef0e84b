package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"icebreaker-backend/internal/icebreakers"
	"icebreaker-backend/internal/llm"
	"icebreaker-backend/internal/profile"
	"icebreaker-backend/internal/shared/config"
)

// suggest-demo runs the selection engine offline against a profile JSON file.
// The placeholder LLM always fails, so personalization comes from the
// rule-based fallback path.
func main() {
	cfg := config.Load()

	profilePath := flag.String("profile", "", "Path to profile JSON file")
	count := flag.Int("count", 5, "Number of icebreakers to suggest")
	category := flag.String("category", "", "Restrict to one category (targeted mode)")
	rounds := flag.Int("rounds", 1, "Number of consecutive suggestion rounds in one session")
	flag.Parse()

	var raw profile.RawProfile
	if strings.TrimSpace(*profilePath) != "" {
		data, err := os.ReadFile(*profilePath)
		if err != nil {
			exitErr(fmt.Sprintf("read profile: %v", err))
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			exitErr(fmt.Sprintf("parse profile: %v", err))
		}
	}

	bank, err := icebreakers.LoadBank()
	if err != nil {
		exitErr(fmt.Sprintf("load question bank: %v", err))
	}

	svc := icebreakers.NewService(bank, llm.PlaceholderClient{}, cfg.AICustomizeTimeout)
	pctx := svc.AnalyzeProfile(raw)

	fmt.Println(svc.Summary(pctx))
	fmt.Println()

	ctx := context.Background()
	for round := 0; round < *rounds; round++ {
		var questions []icebreakers.PersonalizedQuestion
		if strings.TrimSpace(*category) != "" {
			questions, err = svc.SelectTargeted(ctx, icebreakers.Criteria{Category: *category}, pctx, "demo", *count)
		} else {
			questions, err = svc.SelectDiverse(ctx, pctx, "demo", *count)
		}
		if err != nil {
			exitErr(fmt.Sprintf("select: %v", err))
		}

		if *rounds > 1 {
			fmt.Printf("--- round %d ---\n", round+1)
		}
		for i, q := range questions {
			fmt.Printf("%d. [%s/%s, %.1f] %s\n", i+1, q.Category, q.Subcategory, q.RelevanceScore, q.PersonalizedQuestion)
		}
		fmt.Println()
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
