package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2019, time.January, 1, 15, 4, 5, 0, time.Local))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2019-01-01"`, string(b))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso date", input: `"2021-12-01"`, want: "2021-12-01"},
		{name: "not a string", input: `20211201`, wantErr: true},
		{name: "bad layout", input: `"12/2021"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDatePtr_Nil(t *testing.T) {
	assert.Nil(t, DatePtr(nil))
	now := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, DatePtr(&now))
	assert.Equal(t, "2024-03-09", DatePtr(&now).String())
}
