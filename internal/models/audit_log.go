package models

// AuditLog records a mutation made through the API: who changed which
// record, from where and, for settings and exports, what changed.
type AuditLog struct {
	Base
	UserID       string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Action       string         `gorm:"size:32;not null" json:"action"`
	ResourceType string         `gorm:"size:32;not null" json:"resource_type"`
	ResourceID   string         `json:"resource_id,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	Changes      map[string]any `gorm:"type:text;serializer:json" json:"changes,omitempty"`
}
