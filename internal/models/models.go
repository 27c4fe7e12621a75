package models

import (
	"time"
)

// User is a registered platform user. AuthID is the external identity
// string supplied by the auth provider; everything else keys off the
// internal surrogate ID.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AuthID string `gorm:"column:auth_id;uniqueIndex;not null" json:"auth_id"`
	Email  string `gorm:"uniqueIndex" json:"email"`
}

// UserPreference is one confirmed (or pending-confirmation) preference
// value for a user. The (user_id, preference_type, preference_value)
// key makes repeated saves converge on a single row.
type UserPreference struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID          uint           `gorm:"uniqueIndex:idx_user_pref,priority:1;not null" json:"user_id"`
	User            User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PreferenceType  PreferenceType `gorm:"size:50;uniqueIndex:idx_user_pref,priority:2;not null" json:"preference_type"`
	PreferenceValue string         `gorm:"type:text;uniqueIndex:idx_user_pref,priority:3;not null" json:"preference_value"`
	ValidationType  ValidationType `gorm:"size:20;default:'soft'" json:"validation_type"`
	RawText         string         `gorm:"type:text" json:"raw_text"`
}

// TableName keeps the table shared with the rest of the platform.
func (UserPreference) TableName() string {
	return "user_repo_preferences"
}
