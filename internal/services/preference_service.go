package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/interimquest/repo-agent/internal/dtos"
	"github.com/interimquest/repo-agent/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUserNotFound is returned when the external user id does not resolve
// to an internal user. No writes happen in that case.
var ErrUserNotFound = errors.New("user not found")

// SavedPreference is the per-value row summary returned from a save.
type SavedPreference struct {
	ID              uint                  `json:"id"`
	PreferenceValue string                `json:"preference_value"`
	ValidationType  models.ValidationType `json:"validation_type"`
}

// PreferenceService persists confirmed preferences to Postgres.
type PreferenceService struct {
	DB *gorm.DB
}

// NewPreferenceService returns a store over the given connection pool.
func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{DB: db}
}

// Save upserts one row per value under (user, type, value). Re-saving an
// existing key only overwrites validation_type, so repeated confirmations
// converge on a single row instead of duplicating. The per-value upserts
// are independent; there is no multi-row transaction.
func (s *PreferenceService) Save(ctx context.Context, req *dtos.SavePreferenceRequest) ([]SavedPreference, error) {
	user, err := s.resolveUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	saved := make([]SavedPreference, 0, len(req.Values))
	for _, value := range req.Values {
		row := models.UserPreference{
			UserID:          user.ID,
			PreferenceType:  req.PreferenceType,
			PreferenceValue: value,
			ValidationType:  req.ValidationType,
			RawText:         req.RawText,
		}
		err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "preference_type"},
				{Name: "preference_value"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"validation_type"}),
		}).Create(&row).Error
		if err != nil {
			return nil, fmt.Errorf("upsert preference %q: %w", value, err)
		}

		// On conflict the insert doesn't report the existing surrogate id,
		// so read the row back by its natural key.
		var stored models.UserPreference
		err = s.DB.WithContext(ctx).
			Where("user_id = ? AND preference_type = ? AND preference_value = ?",
				user.ID, req.PreferenceType, value).
			First(&stored).Error
		if err != nil {
			return nil, fmt.Errorf("read back preference %q: %w", value, err)
		}

		saved = append(saved, SavedPreference{
			ID:              stored.ID,
			PreferenceValue: stored.PreferenceValue,
			ValidationType:  stored.ValidationType,
		})
	}
	return saved, nil
}

// List returns every stored preference for a user, newest first.
func (s *PreferenceService) List(ctx context.Context, userID string) ([]models.UserPreference, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var prefs []models.UserPreference
	err = s.DB.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&prefs).Error
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	return prefs, nil
}

func (s *PreferenceService) resolveUser(ctx context.Context, authID string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("auth_id = ?", authID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return &user, nil
}
