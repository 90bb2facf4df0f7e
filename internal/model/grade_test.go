package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantSet   bool
		wantValid bool
		wantValue float64
	}{
		{"number", `{"nota": 15.5}`, true, true, 15.5},
		{"zero", `{"nota": 0}`, true, true, 0},
		{"numeric string", `{"nota": "17"}`, true, true, 17},
		{"padded numeric string", `{"nota": " 12 "}`, true, true, 12},
		{"non numeric string", `{"nota": "quince"}`, true, false, 0},
		{"null", `{"nota": null}`, true, false, 0},
		{"absent", `{}`, false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req AssignGradeRequest
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &req))

			assert.Equal(t, tt.wantSet, req.Score.Set)
			assert.Equal(t, tt.wantValid, req.Score.Valid)
			assert.Equal(t, tt.wantValue, req.Score.Value)
		})
	}
}
