package models

// SystemSetting is a key/value row for operator-configurable policy, such as
// the weekly report deadline.
type SystemSetting struct {
	Key   string `json:"key" gorm:"primaryKey;size:50"`
	Value string `json:"value" gorm:"size:255;not null"`
}

// TableName specifies the table name for SystemSetting Model
func (SystemSetting) TableName() string {
	return "system_settings"
}
