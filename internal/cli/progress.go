package cli

import (
	"fmt"

	"github.com/reptrack/reptrack/internal/models"
)

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	metrics, err := ctx.Analytics.GetProgressMetrics(user.ID)
	if err != nil {
		return err
	}

	summary, err := ctx.Analytics.MonthSummary(user.ID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Progress"))
	fmt.Println(mutedStyle.Render(summary))
	fmt.Println()

	fmt.Printf("  Workouts:       %d\n", metrics.TotalWorkouts)
	fmt.Printf("  Training time:  %s\n", formatDuration(metrics.TotalDurationMinutes))
	fmt.Printf("  Current streak: %d days\n", metrics.CurrentStreak)
	fmt.Printf("  Best streak:    %d days\n", metrics.BestStreak)
	fmt.Printf("  Consistency:    %d%%\n", metrics.ConsistencyScore)

	fmt.Println()
	fmt.Println(titleStyle.Render("Muscle balance"))
	for _, m := range metrics.MuscleBalance {
		if m.Volume == 0 {
			continue
		}
		fmt.Printf("  %-10s %s %3d%% (%d sets)\n", m.MuscleGroup, renderBar(m.Percentage, 20), m.Percentage, m.Volume)
	}
	if totalVolume(metrics.MuscleBalance) == 0 {
		fmt.Println(mutedStyle.Render("  No completed workouts yet."))
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("This week"))
	for _, day := range metrics.WeeklyVolume {
		fmt.Printf("  %s  %s %d sets\n", day.Day, renderBar(day.Sets*4, 15), day.Sets)
	}

	return nil
}

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	insights, err := ctx.Analytics.GetInsights(user.ID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Insights"))
	for _, line := range insights {
		fmt.Printf("  • %s\n", line)
	}
	return nil
}

type CoachCmd struct {
	Tip bool `help:"Show a single quick tip instead of the full list."`
}

func (c *CoachCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	if c.Tip {
		tip, err := ctx.Analytics.QuickTip(user.ID)
		if err != nil {
			return err
		}
		fmt.Println(tip)
		return nil
	}

	recs, err := ctx.Analytics.GetRecommendations(user.ID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Coach"))
	for _, rec := range recs {
		marker := "•"
		switch rec.Priority {
		case models.PriorityHigh:
			marker = warningStyle.Render("!")
		case models.PriorityMedium:
			marker = "›"
		}
		fmt.Printf("  %s %s\n", marker, rec.Message)
		if rec.Action != "" {
			fmt.Printf("    %s\n", mutedStyle.Render(rec.Action))
		}
	}
	return nil
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

func totalVolume(balance []models.MuscleBalance) int {
	total := 0
	for _, m := range balance {
		total += m.Volume
	}
	return total
}
