// ABOUTME: Repository interface for nutrition session storage.
// ABOUTME: Defines the contract for profile, meals, calorie goal, and water.
package storage

import (
	"errors"

	"github.com/harperreed/nutri/internal/models"
)

// ErrNoProfile is returned when no user profile has been saved yet.
var ErrNoProfile = errors.New("no profile saved")

// Repository defines the storage interface for one user's session state.
// The four values are keyed independently and reset as a unit on
// login/logout. This interface allows swapping implementations.
type Repository interface {
	// Profile
	SaveProfile(p *models.UserProfile) error
	GetProfile() (*models.UserProfile, error)

	// Meal log
	CreateMeal(m *models.Meal) error
	GetMeal(idOrPrefix string) (*models.Meal, error)
	ListMeals(limit int) ([]*models.Meal, error)
	DeleteMeal(idOrPrefix string) error

	// Calorie goal; nil means no suggestion has been stored yet
	SetCalorieGoal(kcal int) error
	GetCalorieGoal() (*int, error)

	// Water log
	SetWater(date string, glasses int) error
	GetWater(date string) (int, error)
	WaterLog() (models.WaterLog, error)

	// Session
	LoadSession() (*models.Session, error)
	Reset() error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
