// Package cli holds the kong command structs and their shared context.
package cli

import (
	"fmt"

	"github.com/reptrack/reptrack/internal/analytics"
	"github.com/reptrack/reptrack/internal/backup"
	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/habit"
	"github.com/reptrack/reptrack/internal/hydration"
	"github.com/reptrack/reptrack/internal/logger"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Repo      *habit.Repository
	Analytics *analytics.Aggregator
	Hydration *hydration.Tracker
}

func NewContext(store storage.Provider) *Context {
	repo := habit.NewRepository(store)
	return &Context{
		Store:     store,
		Repo:      repo,
		Analytics: analytics.NewAggregator(repo),
		Hydration: hydration.NewTracker(store),
	}
}

// DefaultUser resolves the single local user the commands operate on.
func (c *Context) DefaultUser() (models.User, error) {
	user, err := c.Store.GetDefaultUser()
	if apperr.IsNotFound(err) {
		return models.User{}, fmt.Errorf("no profile found, run 'reptrack init' first")
	}
	return user, err
}

// ResolveHabit finds a habit by name for the given user.
func (c *Context) ResolveHabit(userID, name string) (models.Habit, error) {
	h, err := c.Repo.GetHabitByName(userID, name)
	if apperr.IsNotFound(err) {
		return models.Habit{}, fmt.Errorf("habit %q not found", name)
	}
	return h, err
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
