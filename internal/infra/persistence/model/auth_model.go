package model

// CredentialModel mirrors the 'credentials' table used by the local identity provider.
type CredentialModel struct {
	UserID         string `gorm:"type:text;primaryKey"`
	Email          string `gorm:"type:text;not null;uniqueIndex"`
	Provider       string `gorm:"type:text;not null;index:idx_credentials_provider_subject"`
	ProviderUserID string `gorm:"type:text;not null;index:idx_credentials_provider_subject"`
	PasswordHash   string `gorm:"type:text;not null"`
	TokenVersion   int    `gorm:"not null"`
	CreatedAt      int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      int64  `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
