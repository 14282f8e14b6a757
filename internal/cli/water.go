package cli

import "fmt"

type WaterCmd struct {
	Log    WaterLogCmd    `cmd:"" help:"Log a water intake."`
	Status WaterStatusCmd `cmd:"" help:"Show today's intake against the goal." default:"1"`
	Goal   WaterGoalCmd   `cmd:"" help:"Set the daily intake goal."`
}

type WaterLogCmd struct {
	Amount int `arg:"" help:"Amount in milliliters."`
}

func (c *WaterLogCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	log, err := ctx.Hydration.LogWater(user.ID, c.Amount)
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Logged %d ml (%d/%d ml today)", c.Amount, log.AmountMl, log.GoalMl)))
	return nil
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	today, err := ctx.Hydration.Today(user.ID)
	if err != nil {
		return err
	}

	pct := 0
	if today.GoalMl > 0 {
		pct = today.AmountMl * 100 / today.GoalMl
	}

	fmt.Println(titleStyle.Render("Hydration"))
	fmt.Printf("  %s %d/%d ml\n", renderBar(pct, 20), today.AmountMl, today.GoalMl)
	if today.AmountMl >= today.GoalMl && today.GoalMl > 0 {
		fmt.Println(successStyle.Render("  Goal reached!"))
	}
	return nil
}

type WaterGoalCmd struct {
	Amount int `arg:"" help:"Daily goal in milliliters."`
}

func (c *WaterGoalCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	if err := ctx.Hydration.SetGoal(user.ID, c.Amount); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Daily hydration goal set to %d ml", c.Amount)))
	return nil
}
