package quickserve_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/quickserve"
)

func intPtr(v int) *int { return &v }

func TestPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload quickserve.Payload
		wantErr bool
	}{
		{name: "name and id", payload: quickserve.Payload{ID: intPtr(1), Name: "Test"}},
		{name: "name without id", payload: quickserve.Payload{Name: "Test"}},
		{name: "whitespace name is present", payload: quickserve.Payload{Name: " "}},
		{name: "empty name", payload: quickserve.Payload{ID: intPtr(1)}, wantErr: true},
		{name: "zero value", payload: quickserve.Payload{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var apiErr *quickserve.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, 400, apiErr.StatusCode())
			assert.Equal(t, quickserve.MsgNameRequired, apiErr.Message())
		})
	}
}

func TestPayload_JSONOmitsMissingID(t *testing.T) {
	data, err := json.Marshal(quickserve.Payload{Name: "Test"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Test"}`, string(data))

	data, err = json.Marshal(quickserve.Payload{ID: intPtr(0), Name: "Test"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":0,"name":"Test"}`, string(data))
}

func TestNewItem(t *testing.T) {
	assert.Equal(t, quickserve.Item{ID: 42, Name: "Item 42"}, quickserve.NewItem(42))
	assert.Equal(t, quickserve.Item{ID: -7, Name: "Item -7"}, quickserve.NewItem(-7))
}
