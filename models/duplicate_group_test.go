package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSensitivity(t *testing.T) {
	tests := []struct {
		in      string
		want    Sensitivity
		wantErr bool
	}{
		{in: "", want: SensitivityNormal},
		{in: "max", want: SensitivityMax},
		{in: "HIGH", want: SensitivityHigh},
		{in: " low ", want: SensitivityLow},
		{in: "min", want: SensitivityMin},
		{in: "0.25", want: 0.25},
		{in: "-1", want: -1},
		{in: "paranoid", wantErr: true},
		{in: "nan", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "inf", wantErr: true},
		{in: "-Infinity", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSensitivity(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSensitivity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuplicateGroup_CipherIDs(t *testing.T) {
	g := DuplicateGroup{Ciphers: []Cipher{{ID: "b"}, {ID: "a"}}}

	assert.Equal(t, []string{"b", "a"}, g.CipherIDs())
	assert.Empty(t, DuplicateGroup{}.CipherIDs())
}

func TestCipher_IgnoresAndDeleted(t *testing.T) {
	now := time.Now()
	c := Cipher{IgnoredAlerts: []AlertType{AlertBroadURIs}}

	assert.True(t, c.Ignores(AlertBroadURIs))
	assert.False(t, c.Ignores(AlertDuplicate))
	assert.False(t, c.Deleted())

	c.DeletedDate = &now
	assert.True(t, c.Deleted())
}
