package config

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Timezone(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "unset uses server zone", timezone: ""},
		{name: "utc", timezone: "UTC"},
		{name: "iana zone", timezone: "Asia/Taipei"},
		{name: "typo", timezone: "Asia/Taipai", wantErr: true},
		{name: "garbage", timezone: "not a zone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Invitation: &InvitationConfig{Timezone: tt.timezone}}
			ApplyDefaults(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.timezone)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.NoError(t, cfg.Validate())
}
