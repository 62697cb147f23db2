// ABOUTME: Repository implementation over Charm KV for session state.
// ABOUTME: Uses type-prefixed keys; every write syncs to Charm Cloud.
package charm

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/storage"
)

// Compile-time check that Client implements Repository.
var _ storage.Repository = (*Client)(nil)

// SaveProfile stores or replaces the user profile.
func (c *Client) SaveProfile(p *models.UserProfile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return c.set(ProfileKey, data)
}

// GetProfile retrieves the stored profile, or storage.ErrNoProfile.
func (c *Client) GetProfile() (*models.UserProfile, error) {
	data, ok, err := c.get(ProfileKey)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !ok {
		return nil, storage.ErrNoProfile
	}
	return unmarshalJSON[models.UserProfile](data)
}

// CreateMeal stores a new meal in the KV store.
func (c *Client) CreateMeal(m *models.Meal) error {
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal meal: %w", err)
	}
	return c.set(MealPrefix+m.ID.String(), data)
}

// GetMeal retrieves a meal by ID or ID prefix.
func (c *Client) GetMeal(idOrPrefix string) (*models.Meal, error) {
	data, err := c.getByIDPrefix(MealPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}

	meal, err := unmarshalJSON[models.Meal](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal meal: %w", err)
	}
	meal.Nutrients.Normalize()
	return meal, nil
}

// ListMeals retrieves meals sorted by LoggedAt descending (most recent
// first). A limit of 0 returns the full log.
func (c *Client) ListMeals(limit int) ([]*models.Meal, error) {
	allData, err := c.listByPrefix(MealPrefix)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	var meals []*models.Meal
	for _, data := range allData {
		m, err := unmarshalJSON[models.Meal](data)
		if err != nil {
			continue // Skip invalid entries
		}
		m.Nutrients.Normalize()
		meals = append(meals, m)
	}

	sort.Slice(meals, func(i, j int) bool {
		return meals[i].LoggedAt.After(meals[j].LoggedAt)
	})

	if limit > 0 && len(meals) > limit {
		meals = meals[:limit]
	}

	return meals, nil
}

// DeleteMeal removes a meal by ID or prefix.
func (c *Client) DeleteMeal(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(MealPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}

// SetCalorieGoal stores the suggested daily calorie goal.
func (c *Client) SetCalorieGoal(kcal int) error {
	if kcal <= 0 {
		return fmt.Errorf("calorie goal must be positive, got %d", kcal)
	}
	return c.set(GoalKey, []byte(strconv.Itoa(kcal)))
}

// GetCalorieGoal retrieves the stored goal; nil means goal pending.
func (c *Client) GetCalorieGoal() (*int, error) {
	data, ok, err := c.get(GoalKey)
	if err != nil {
		return nil, fmt.Errorf("get calorie goal: %w", err)
	}
	if !ok {
		return nil, nil
	}
	kcal, err := strconv.Atoi(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse calorie goal: %w", err)
	}
	return &kcal, nil
}

// SetWater stores the glass count for a date. Zero removes the key.
func (c *Client) SetWater(date string, glasses int) error {
	if glasses <= 0 {
		if _, ok, err := c.get(WaterPrefix + date); err != nil || !ok {
			return err
		}
		return c.delete(WaterPrefix + date)
	}
	return c.set(WaterPrefix+date, []byte(strconv.Itoa(glasses)))
}

// GetWater returns the glass count for a date, 0 when absent.
func (c *Client) GetWater(date string) (int, error) {
	data, ok, err := c.get(WaterPrefix + date)
	if err != nil {
		return 0, fmt.Errorf("get water: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return strconv.Atoi(string(data))
}

// WaterLog returns the full sparse water log.
func (c *Client) WaterLog() (models.WaterLog, error) {
	keys, err := c.keysByPrefix(WaterPrefix)
	if err != nil {
		return nil, fmt.Errorf("load water log: %w", err)
	}

	log := models.WaterLog{}
	for _, key := range keys {
		data, ok, err := c.get(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		glasses, err := strconv.Atoi(string(data))
		if err != nil {
			continue // Skip invalid entries
		}
		log[strings.TrimPrefix(key, WaterPrefix)] = glasses
	}
	return log, nil
}

// LoadSession loads the full session state at startup.
func (c *Client) LoadSession() (*models.Session, error) {
	profile, err := c.GetProfile()
	if err != nil && !errors.Is(err, storage.ErrNoProfile) {
		return nil, err
	}

	meals, err := c.ListMeals(0)
	if err != nil {
		return nil, err
	}

	goal, err := c.GetCalorieGoal()
	if err != nil {
		return nil, err
	}

	water, err := c.WaterLog()
	if err != nil {
		return nil, err
	}

	return &models.Session{
		Profile:     profile,
		Meals:       meals,
		CalorieGoal: goal,
		Water:       water,
	}, nil
}

// Reset wipes all session state, deleting every key this store owns.
func (c *Client) Reset() error {
	for _, prefix := range []string{ProfileKey, GoalKey, MealPrefix, WaterPrefix} {
		keys, err := c.keysByPrefix(prefix)
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		for _, key := range keys {
			if err := c.delete(key); err != nil {
				return fmt.Errorf("reset %s: %w", key, err)
			}
		}
	}
	return nil
}

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	session, err := c.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return storage.NewExportData(session), nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	return storage.ImportInto(c, data)
}
