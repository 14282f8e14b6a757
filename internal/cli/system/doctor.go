package system

import (
	"fmt"
	"time"

	"github.com/reptrack/reptrack/internal/backup"
	"github.com/reptrack/reptrack/internal/cli"
	"github.com/reptrack/reptrack/internal/constants"
	apperr "github.com/reptrack/reptrack/internal/errors"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkProfile(ctx); err != nil {
			fmt.Printf("❌ Profile present: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Profile present: OK\n")
		}
	} else {
		fmt.Printf("⊘ Profile present: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkLogIntegrity(ctx); err != nil {
			fmt.Printf("❌ Log integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Log integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Log integrity: SKIPPED (database not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkProfile(ctx *cli.Context) error {
	_, err := ctx.Store.GetDefaultUser()
	if apperr.IsNotFound(err) {
		return fmt.Errorf("no profile found, run 'reptrack init'")
	}
	return err
}

// checkLogIntegrity verifies the one-log-per-day invariant over each
// habit's fetched history. The unique constraint should make a violation
// impossible; a hit here means the database was edited out-of-band.
func checkLogIntegrity(ctx *cli.Context) error {
	user, err := ctx.Store.GetDefaultUser()
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return err
	}

	habits, err := ctx.Store.GetHabitsByUser(user.ID, false)
	if err != nil {
		return err
	}

	for _, h := range habits {
		logs, err := ctx.Store.ListLogs(h.ID, constants.LogFetchLimit)
		if err != nil {
			return err
		}
		seen := make(map[string]bool, len(logs))
		for _, log := range logs {
			if seen[log.Day] {
				return fmt.Errorf("habit %q has duplicate logs for %s", h.Name, log.Day)
			}
			seen[log.Day] = true
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run 'reptrack backup create'")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock appears wrong: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset out of range")
	}
	return nil
}
