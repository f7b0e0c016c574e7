package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Role
		wantErr bool
	}{
		{name: "admin", in: "admin", want: RoleAdmin},
		{name: "user", in: "user", want: RoleUser},
		{name: "empty", in: "", wantErr: true},
		{name: "case sensitive", in: "Admin", wantErr: true},
		{name: "unknown", in: "root", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentity_JSON(t *testing.T) {
	raw := []byte(`{"id":"x","name":"Y","role":"admin"}`)
	var got Identity
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, Identity{ID: "x", Name: "Y", Role: RoleAdmin}, got)
	assert.True(t, got.IsAdmin())

	err := json.Unmarshal([]byte(`{"id":"x","role":"owner"}`), &got)
	assert.Error(t, err)

	_, err = json.Marshal(Identity{ID: "x", Role: "owner"})
	assert.Error(t, err)
}
