package storage

import "github.com/reptrack/reptrack/internal/models"

// Provider is the persistence contract for both backends. Absent rows are
// reported as errors.ErrNotFound; all other failures wrap as StorageError.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Users
	SaveUser(models.User) error
	GetUser(id string) (models.User, error)
	GetDefaultUser() (models.User, error)

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(userID, name string) (models.Habit, error)
	GetHabitsByUser(userID string, activeOnly bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Habit logs. UpsertLog must be atomic with respect to the existence
	// check: two rows for the same (habit, day) must never coexist.
	UpsertLog(models.HabitLog) error
	GetLog(habitID, day string) (models.HabitLog, error)
	ListLogs(habitID string, limit int) ([]models.HabitLog, error)

	// Hydration
	GetHydrationSettings(userID string) (models.HydrationSettings, error)
	SaveHydrationSettings(models.HydrationSettings) error
	GetHydrationLog(userID, day string) (models.HydrationLog, error)
	SaveHydrationLog(models.HydrationLog) error

	// Body measurements
	AddMeasurement(models.BodyMeasurement) error
	GetMeasurementsByUser(userID string, limit int) ([]models.BodyMeasurement, error)

	// Utils
	GetConfigPath() string
}
