// Package system holds lifecycle and diagnostics commands.
package system

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/reptrack/reptrack/internal/cli"
	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
)

type InitCmd struct {
	Name      string `help:"Profile display name." default:"Athlete"`
	Skill     string `help:"Skill level: beginner, intermediate, advanced, or elite." default:"beginner"`
	Frequency int    `help:"Target training sessions per week." default:"3"`
	Force     bool   `help:"Force reset by deleting the existing database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized reptrack storage at: %s\n", ctx.Store.GetConfigPath())

	// Create the local profile unless one already exists.
	if _, err := ctx.Store.GetDefaultUser(); err == nil {
		fmt.Println("Existing profile found, keeping it.")
		return nil
	} else if !apperr.IsNotFound(err) {
		return err
	}

	skill := models.SkillLevel(c.Skill)
	switch skill {
	case models.SkillBeginner, models.SkillIntermediate, models.SkillAdvanced, models.SkillElite:
	default:
		return fmt.Errorf("invalid skill level %q", c.Skill)
	}

	now := time.Now()
	user := models.User{
		ID:              uuid.New().String(),
		Name:            c.Name,
		SkillLevel:      skill,
		WeeklyFrequency: c.Frequency,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := ctx.Store.SaveUser(user); err != nil {
		return err
	}

	fmt.Printf("Created profile for %s (%s). Add your first habit with 'reptrack habit add'.\n", user.Name, user.SkillLevel)
	return nil
}
