package model

// GroupModel mirrors the 'groups' table.
type GroupModel struct {
	ID          string `gorm:"type:text;primaryKey"`
	Name        string `gorm:"type:text;not null"`
	Description string `gorm:"type:text;not null"`
	IsPublic    bool   `gorm:"not null"`
	CreatedBy   string `gorm:"type:text;not null;index"`
	InviteCode  string `gorm:"type:text;not null;uniqueIndex:idx_groups_invite_code"`
	MaxMembers  int    `gorm:"not null"`
	IsActive    bool   `gorm:"not null"`
	CreatedAt   int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"`

	Members []MemberModel `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// MemberModel mirrors the 'members' join table. The row is removed with its user or group.
type MemberModel struct {
	UserID   string `gorm:"type:text;primaryKey"`
	GroupID  string `gorm:"type:text;primaryKey;index"`
	Role     string `gorm:"type:text;not null"`
	JoinedAt int64  `gorm:"not null"`
	IsActive bool   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
