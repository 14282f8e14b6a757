package cli

import (
	"fmt"

	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Log    HabitLogCmd    `cmd:"" help:"Log a habit completion for a day."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's habit status with streaks."`
	Streak HabitStreakCmd `cmd:"" help:"Show streaks for a habit."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's targets."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its logs."`
}

type HabitAddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Type      string `help:"Completion type: reps, time, or distance." default:"reps"`
	Sets      int    `help:"Target sets." default:"3"`
	Reps      int    `help:"Target reps per set (reps habits)." default:"10"`
	Time      int    `help:"Target duration in seconds (time habits)." default:"0"`
	Distance  int    `help:"Target distance in meters (distance habits)." default:"0"`
	Frequency string `help:"Frequency: daily or weekly." default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	if _, err := ctx.Repo.GetHabitByName(user.ID, c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	} else if !apperr.IsNotFound(err) {
		return err
	}

	habit, err := ctx.Repo.CreateHabit(models.Habit{
		UserID:          user.ID,
		Name:            c.Name,
		Type:            models.CompletionType(c.Type),
		TargetSets:      c.Sets,
		TargetReps:      c.Reps,
		TargetTimeSec:   c.Time,
		TargetDistanceM: c.Distance,
		Frequency:       models.Frequency(c.Frequency),
		Active:          true,
	})
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Added habit: %s (%s)", habit.Name, formatTarget(habit))))
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include inactive habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Repo.ListHabits(user.ID, !c.All)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'reptrack habit add'.")
		return nil
	}

	fmt.Println(titleStyle.Render("Habits"))
	for _, h := range habits {
		status := ""
		if !h.Active {
			status = mutedStyle.Render(" [inactive]")
		}
		fmt.Printf("  %s — %s, %s%s\n", h.Name, formatTarget(h), h.Frequency, status)
	}
	return nil
}

type HabitLogCmd struct {
	Name    string `arg:"" help:"Habit name."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Sets    int    `help:"Sets completed." default:"0"`
	Reps    int    `help:"Reps completed per set." default:"0"`
	Time    int    `help:"Time completed in seconds." default:"0"`
	Notes   string `help:"Optional note for this log." default:""`
	Skipped bool   `help:"Record the day as skipped rather than completed."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(user.ID, c.Name)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.Repo.Today()
	}

	log, err := ctx.Repo.LogHabit(habit.ID, day, models.CompletionFields{
		Completed:     !c.Skipped,
		SetsCompleted: c.Sets,
		RepsCompleted: c.Reps,
		TimeCompleted: c.Time,
		Notes:         c.Notes,
	})
	if err != nil {
		return err
	}

	if log.Completed {
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ Logged %s for %s (%d sets)", habit.Name, log.Day, log.SetsCompleted)))
	} else {
		fmt.Printf("Marked %s as skipped for %s\n", habit.Name, log.Day)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	statuses, err := ctx.Repo.GetHabitsWithTodayStatus(user.ID)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		fmt.Println("No active habits. Add one with 'reptrack habit add'.")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Habits for %s", ctx.Repo.Today())))
	fmt.Println()

	done := 0
	for _, st := range statuses {
		mark := "[ ]"
		if st.TodayLog != nil && st.TodayLog.Completed {
			mark = successStyle.Render("[x]")
			done++
		}
		streak := ""
		if st.Streak.Current > 0 {
			streak = mutedStyle.Render(fmt.Sprintf("  🔥 %d day streak", st.Streak.Current))
		}
		fmt.Printf("%s %s%s\n", mark, st.Habit.Name, streak)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(statuses))
	return nil
}

type HabitStreakCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitStreakCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(user.ID, c.Name)
	if err != nil {
		return err
	}

	streak, err := ctx.Repo.Streak(habit.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n  Current streak: %d days\n  Best streak:    %d days\n", titleStyle.Render(habit.Name), streak.Current, streak.Best)
	return nil
}

type HabitEditCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Sets     int    `help:"New target sets." default:"0"`
	Reps     int    `help:"New target reps." default:"0"`
	Time     int    `help:"New target duration in seconds." default:"0"`
	Distance int    `help:"New target distance in meters." default:"0"`
	Inactive bool   `help:"Deactivate the habit (keeps history)."`
	Active   bool   `help:"Reactivate the habit."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(user.ID, c.Name)
	if err != nil {
		return err
	}

	if c.Sets > 0 {
		habit.TargetSets = c.Sets
	}
	if c.Reps > 0 {
		habit.TargetReps = c.Reps
	}
	if c.Time > 0 {
		habit.TargetTimeSec = c.Time
	}
	if c.Distance > 0 {
		habit.TargetDistanceM = c.Distance
	}
	if c.Inactive {
		habit.Active = false
	}
	if c.Active {
		habit.Active = true
	}

	if err := ctx.Repo.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Updated %s (%s)", habit.Name, formatTarget(habit))))
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(user.ID, c.Name)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Repo.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and its logs.\n", habit.Name)
	return nil
}

// formatTarget renders a habit's target in a type-appropriate unit.
func formatTarget(h models.Habit) string {
	switch h.Type {
	case models.CompletionTime:
		return fmt.Sprintf("%d×%ds", h.TargetSets, h.TargetTimeSec)
	case models.CompletionDistance:
		return fmt.Sprintf("%d×%dm", h.TargetSets, h.TargetDistanceM)
	default:
		return fmt.Sprintf("%d×%d reps", h.TargetSets, h.TargetReps)
	}
}
