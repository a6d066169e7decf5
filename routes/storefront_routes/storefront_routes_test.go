package storefront_routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MiniShop-Demo/minishop-demo-backend/middleware"
	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	session_store "github.com/MiniShop-Demo/minishop-demo-backend/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// client drives the storefront API through the real router, carrying the
// session cookie across requests like a browser would.
type client struct {
	t      *testing.T
	r      *gin.Engine
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	session_store.ResetAll()
	session_store.Init(30 * time.Minute)

	r := gin.New()
	api := r.Group("/api/v1")
	SetupStorefrontRoutes(api)
	return &client{t: t, r: r}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			c.cookie = cookie
		}
	}
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) models.ApiResponse {
	t.Helper()
	var resp struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   bool            `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if out != nil && len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return models.ApiResponse{Message: resp.Message, Error: resp.Error}
}

func TestProductListing(t *testing.T) {
	c := newClient(t)

	t.Run("Default listing returns the whole catalog", func(t *testing.T) {
		w := c.do(http.MethodGet, "/store/products", "")
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Products []models.Product `json:"products"`
			Count    int              `json:"count"`
		}
		decodeData(t, w, &data)
		assert.Equal(t, 8, data.Count)
		assert.Equal(t, 1, data.Products[0].ID)
	})

	t.Run("Query params narrow the listing", func(t *testing.T) {
		w := c.do(http.MethodGet, "/store/products?category=Electrónica&minPrice=150", "")
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Products []models.Product `json:"products"`
		}
		decodeData(t, w, &data)
		require.Len(t, data.Products, 1)
		assert.Equal(t, "Cámara de acción", data.Products[0].Name)
	})

	t.Run("Applied filters persist on the session", func(t *testing.T) {
		w := c.do(http.MethodPut, "/store/filters", `{"q":"mochila","category":"all"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = c.do(http.MethodGet, "/store/products", "")
		var data struct {
			Products []models.Product `json:"products"`
		}
		decodeData(t, w, &data)
		require.Len(t, data.Products, 1)
		assert.Equal(t, 3, data.Products[0].ID)
	})

	t.Run("No match is an empty 200, not an error", func(t *testing.T) {
		w := c.do(http.MethodGet, "/store/products?q=zzzzz", "")
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Products []models.Product `json:"products"`
			Count    int              `json:"count"`
		}
		resp := decodeData(t, w, &data)
		assert.False(t, resp.Error)
		assert.Zero(t, data.Count)
		assert.NotNil(t, data.Products)
	})
}

func TestCartFlow(t *testing.T) {
	c := newClient(t)

	// add product 1 twice -> one accumulated line
	w := c.do(http.MethodPost, "/store/cart/items", `{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.CartSummary
	decodeData(t, w, &summary)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 2, summary.Lines[0].Quantity)
	assert.InDelta(t, 39.98, summary.Total, 1e-9)

	t.Run("Checkout decrements stock and clears the cart", func(t *testing.T) {
		w := c.do(http.MethodPost, "/store/cart/checkout", "")
		require.Equal(t, http.StatusOK, w.Code)

		var result models.PurchaseResult
		decodeData(t, w, &result)
		require.Len(t, result.StockUpdates, 1)
		assert.Equal(t, 24, result.StockUpdates[0].OldStock)
		assert.Equal(t, 22, result.StockUpdates[0].NewStock)

		var product models.Product
		w = c.do(http.MethodGet, "/store/products/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		decodeData(t, w, &product)
		assert.Equal(t, 22, product.Stock)

		w = c.do(http.MethodGet, "/store/cart", "")
		var after models.CartSummary
		decodeData(t, w, &after)
		assert.Empty(t, after.Lines)
	})

	t.Run("Checkout on empty cart conflicts", func(t *testing.T) {
		w := c.do(http.MethodPost, "/store/cart/checkout", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Editing a line to zero removes it", func(t *testing.T) {
		w := c.do(http.MethodPost, "/store/cart/items", `{"product_id":2,"quantity":1}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = c.do(http.MethodPut, "/store/cart/items/2", `{"quantity":0}`)
		require.Equal(t, http.StatusOK, w.Code)

		var summary models.CartSummary
		decodeData(t, w, &summary)
		assert.Empty(t, summary.Lines)
	})

	t.Run("Unknown product is a 404", func(t *testing.T) {
		w := c.do(http.MethodPost, "/store/cart/items", `{"product_id":999,"quantity":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartDownload(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/store/cart/items", `{"product_id":3,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/store/cart/download", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="carrito.json"`, w.Header().Get("Content-Disposition"))

	var lines []models.CartExportLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, models.CartExportLine{ProductID: 3, Name: "Mochila urbana", UnitPrice: 49.5, Quantity: 2}, lines[0])
}

func TestResetDemo(t *testing.T) {
	c := newClient(t)

	// dirty the session: buy out product 8 and leave filters applied
	w := c.do(http.MethodPost, "/store/cart/items", `{"product_id":8,"quantity":4}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodPost, "/store/cart/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodPut, "/store/filters", `{"q":"reloj"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPost, "/store/session/reset", "")
	require.Equal(t, http.StatusOK, w.Code)

	var info models.SessionInfo
	decodeData(t, w, &info)
	assert.Zero(t, info.ItemsInCart)

	// catalog restored exactly, filters cleared
	w = c.do(http.MethodGet, "/store/products", "")
	var data struct {
		Products []models.Product `json:"products"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, models.DefaultProducts(), data.Products)
}

func TestSessionIsolationAndStats(t *testing.T) {
	c1 := newClient(t)

	w := c1.do(http.MethodPost, "/store/cart/items", `{"product_id":5,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	// second visitor on the same router sees a pristine catalog
	c2 := &client{t: t, r: c1.r}
	w = c2.do(http.MethodGet, "/store/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.CartSummary
	decodeData(t, w, &summary)
	assert.Empty(t, summary.Lines)

	w = c2.do(http.MethodGet, "/store/stats", "")
	var stats models.CatalogStats
	decodeData(t, w, &stats)
	assert.Equal(t, models.CatalogStats{TotalProducts: 8, TotalCategories: 5, TotalStock: 125}, stats)
}

func TestSalesInsights(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/store/insights/sales", "")
	require.Equal(t, http.StatusOK, w.Code)

	var insights models.SalesInsights
	decodeData(t, w, &insights)
	require.Len(t, insights.Products, 8)
	assert.InDelta(t, 95.95, insights.Products[0].EstimatedSales, 1e-9)
	require.Len(t, insights.Categories, 5)
}

func TestFilterMetadataEndpoint(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/store/filters/metadata", "")
	require.Equal(t, http.StatusOK, w.Code)

	var metadata models.FilterMetadata
	decodeData(t, w, &metadata)
	require.NotNil(t, metadata.PriceRange)
	assert.Equal(t, 14.0, metadata.PriceRange.Min)
	assert.Equal(t, 199.0, metadata.PriceRange.Max)
	assert.Equal(t, 8, metadata.Availability.InStock)
}
