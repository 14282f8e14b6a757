package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/validation"
)

type MeasureCmd struct {
	Add  MeasureAddCmd  `cmd:"" help:"Record body measurements for a day."`
	List MeasureListCmd `cmd:"" help:"List recorded measurements."`
}

type MeasureAddCmd struct {
	Date   string  `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Weight float64 `help:"Body weight in kilograms." default:"0"`
	Fat    float64 `help:"Body fat percentage." default:"0"`
	Chest  float64 `help:"Chest circumference in centimeters." default:"0"`
	Waist  float64 `help:"Waist circumference in centimeters." default:"0"`
	Arms   float64 `help:"Arm circumference in centimeters." default:"0"`
	Legs   float64 `help:"Leg circumference in centimeters." default:"0"`
	Notes  string  `help:"Optional note." default:""`
}

func (c *MeasureAddCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.Repo.Today()
	}
	if err := validation.ValidateLogDay(day, time.Now()); err != nil {
		return err
	}

	m := models.BodyMeasurement{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Day:       day,
		WeightKg:  optional(c.Weight),
		BodyFat:   optional(c.Fat),
		ChestCm:   optional(c.Chest),
		WaistCm:   optional(c.Waist),
		ArmsCm:    optional(c.Arms),
		LegsCm:    optional(c.Legs),
		Notes:     c.Notes,
		CreatedAt: time.Now(),
	}
	if m.WeightKg == nil && m.BodyFat == nil && m.ChestCm == nil && m.WaistCm == nil && m.ArmsCm == nil && m.LegsCm == nil {
		return fmt.Errorf("at least one measurement value is required")
	}

	if err := ctx.Store.AddMeasurement(m); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Recorded measurements for %s", day)))
	return nil
}

type MeasureListCmd struct {
	Limit int `help:"Number of entries to show." default:"10"`
}

func (c *MeasureListCmd) Run(ctx *Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	measurements, err := ctx.Store.GetMeasurementsByUser(user.ID, c.Limit)
	if err != nil {
		return err
	}

	if len(measurements) == 0 {
		fmt.Println("No measurements recorded yet.")
		return nil
	}

	fmt.Println(titleStyle.Render("Measurements"))
	for _, m := range measurements {
		line := fmt.Sprintf("  %s ", m.Day)
		if m.WeightKg != nil {
			line += fmt.Sprintf(" %.1f kg", *m.WeightKg)
		}
		if m.BodyFat != nil {
			line += fmt.Sprintf("  %.1f%% bf", *m.BodyFat)
		}
		if m.WaistCm != nil {
			line += fmt.Sprintf("  waist %.1f cm", *m.WaistCm)
		}
		if m.ChestCm != nil {
			line += fmt.Sprintf("  chest %.1f cm", *m.ChestCm)
		}
		if m.Notes != "" {
			line += "  " + mutedStyle.Render(m.Notes)
		}
		fmt.Println(line)
	}
	return nil
}

func optional(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
