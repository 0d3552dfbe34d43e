package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Mercurial-spe/shop/models"
)

func (s *CartTestSuite) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/cart/:userId", GetCartHandler(s.db))
	r.POST("/api/cart/add", AddToCartHandler(s.db))
	r.DELETE("/api/cart/:userId/item/:cartItemId", RemoveFromCartHandler(s.db))
	r.DELETE("/api/cart/:userId/clear", ClearCartHandler(s.db))
	return r
}

func (s *CartTestSuite) do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (s *CartTestSuite) TestAddHandlerDefaultsQuantityToOne() {
	r := s.router()

	w := s.do(r, http.MethodPost, "/api/cart/add", gin.H{
		"userId":    s.user.ID,
		"productId": s.product.ID,
	})
	require.Equal(s.T(), http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &item))
	require.Equal(s.T(), 1, item.Quantity)
}

func (s *CartTestSuite) TestAddHandlerUnknownProductIsPlainText400() {
	r := s.router()

	w := s.do(r, http.MethodPost, "/api/cart/add", gin.H{
		"userId":    s.user.ID,
		"productId": 9999,
	})
	require.Equal(s.T(), http.StatusBadRequest, w.Code)
	require.Equal(s.T(), "product not found", w.Body.String())
}

func (s *CartTestSuite) TestClearHandlerReturns204() {
	r := s.router()

	w := s.do(r, http.MethodDelete, "/api/cart/1/clear", nil)
	require.Equal(s.T(), http.StatusNoContent, w.Code)
}

func (s *CartTestSuite) TestRemoveHandlerIgnoresOwnership() {
	other := models.User{Username: "other", Password: "pw"}
	require.NoError(s.T(), s.db.Create(&other).Error)
	item, err := AddToCart(s.db, s.user.ID, s.product.ID, 1)
	require.NoError(s.T(), err)

	// The path userId is not cross-checked against the line's owner.
	r := s.router()
	path := fmt.Sprintf("/api/cart/9999/item/%d", item.ID)
	w := s.do(r, http.MethodDelete, path, nil)
	require.Equal(s.T(), http.StatusNoContent, w.Code)

	items, err := GetCart(s.db, s.user.ID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), items)
}
