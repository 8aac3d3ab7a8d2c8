package models

import "time"

// Community is the administrative record of a community: identity, metadata,
// rule set, membership, and moderator assignments.
//
// MemberCount and ModeratorCount are denormalized copies of the association
// set sizes. They are recomputed inside the same transaction as every set
// mutation and must never be written independently of the sets.
type Community struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Banner      string `gorm:"size:512" json:"banner,omitempty"`
	Category    string `gorm:"size:50" json:"category,omitempty"`

	Rules      []Rule `gorm:"many2many:community_rules" json:"rules,omitempty"`
	Members    []User `gorm:"many2many:community_members" json:"members,omitempty"`
	Moderators []User `gorm:"many2many:community_moderators" json:"moderators,omitempty"`

	MemberCount    int `gorm:"not null;default:0" json:"member_count"`
	ModeratorCount int `gorm:"not null;default:0" json:"moderator_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Community) TableName() string {
	return "communities"
}

// CommunityPatch carries the optional fields of a community update. A nil
// field is left unchanged; a set field is validated the same way as on create.
type CommunityPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Banner      *string `json:"banner,omitempty"`
	Category    *string `json:"category,omitempty"`
}
