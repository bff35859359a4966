// Package settingsrepo persists key/value settings. Values are stored as JSON
// text so a setting can hold any shape the caller sends, scalars and documents
// alike.
package settingsrepo

// SettingDTO represents the database structure for a single settings entry.
type SettingDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:text"`
}

// TableName specifies the database table name for settings entries.
func (SettingDTO) TableName() string {
	return "settings"
}
