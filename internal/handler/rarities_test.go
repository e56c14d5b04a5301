package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleListRarities(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/rarities", nil)
	w := httptest.NewRecorder()
	HandleListRarities().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
		Data  []struct {
			Name      string `json:"name"`
			Color     string `json:"color"`
			Tradeable bool   `json:"tradeable"`
			InputSize int    `json:"input_size"`
			Next      string `json:"next"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 8, resp.Count)
	require.Len(t, resp.Data, 8)

	assert.Equal(t, "Consumer Grade", resp.Data[0].Name)
	assert.Equal(t, "Industrial Grade", resp.Data[0].Next)
	assert.Equal(t, 10, resp.Data[0].InputSize)

	covert := resp.Data[5]
	assert.Equal(t, "Covert", covert.Name)
	assert.Equal(t, "#FF0000", covert.Color)
	assert.Equal(t, 5, covert.InputSize)
	assert.Equal(t, "Extraordinary", covert.Next)

	contraband := resp.Data[7]
	assert.False(t, contraband.Tradeable)
	assert.Empty(t, contraband.Next)
	assert.Zero(t, contraband.InputSize)
}
