package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/reptrack/reptrack/internal/models"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the current profile." default:"1"`
	Set  ProfileSetCmd  `cmd:"" help:"Update profile fields."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(user.Name))
	fmt.Printf("  Skill level:      %s\n", user.SkillLevel)
	fmt.Printf("  Weekly frequency: %d sessions\n", user.WeeklyFrequency)
	if len(user.Goals) > 0 {
		fmt.Printf("  Goals:            %s\n", strings.Join(user.Goals, ", "))
	}
	return nil
}

type ProfileSetCmd struct {
	Name      string `help:"Display name." default:""`
	Skill     string `help:"Skill level: beginner, intermediate, advanced, or elite." default:""`
	Frequency int    `help:"Target training sessions per week." default:"0"`
	Goals     string `help:"Comma-separated goals." default:""`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	if c.Name != "" {
		user.Name = c.Name
	}
	if c.Skill != "" {
		switch models.SkillLevel(c.Skill) {
		case models.SkillBeginner, models.SkillIntermediate, models.SkillAdvanced, models.SkillElite:
			user.SkillLevel = models.SkillLevel(c.Skill)
		default:
			return fmt.Errorf("invalid skill level %q", c.Skill)
		}
	}
	if c.Frequency > 0 {
		user.WeeklyFrequency = c.Frequency
	}
	if c.Goals != "" {
		var goals []string
		for _, g := range strings.Split(c.Goals, ",") {
			if g = strings.TrimSpace(g); g != "" {
				goals = append(goals, g)
			}
		}
		user.Goals = goals
	}
	user.UpdatedAt = time.Now()

	if err := ctx.Store.SaveUser(user); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("✓ Profile updated"))
	return nil
}
