package contact_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", SubmitContact)
	return r
}

func postContact(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, models.ApiResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func confirmation(t *testing.T, resp models.ApiResponse) string {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	message, ok := data["confirmation"].(string)
	require.True(t, ok)
	return message
}

func TestSubmitContact(t *testing.T) {
	r := setupRouter()

	t.Run("Confirmation has the fixed shape", func(t *testing.T) {
		w, resp := postContact(t, r, `{"name":"Ana","subject":"Matemáticas"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Thanks Ana! Your request to reinforce in Matemáticas has been sent.", confirmation(t, resp))
	})

	t.Run("Empty fields are accepted as-is", func(t *testing.T) {
		w, resp := postContact(t, r, `{"name":"","subject":""}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Thanks ! Your request to reinforce in  has been sent.", confirmation(t, resp))
	})

	t.Run("Malformed body is rejected", func(t *testing.T) {
		w, resp := postContact(t, r, `{not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, resp.Error)
	})
}
