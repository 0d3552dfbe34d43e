package orderControllers

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Mercurial-spe/shop/models"
)

func (s *CheckoutTestSuite) TestSellerStats() {
	a := s.createProduct("A", 10, nil)
	b := s.createProduct("B", 5, nil)

	// Three orders: A x3, A x2, B x1.
	_, err := PurchaseSingle(s.db, s.notifier, s.buyer.ID, a.ID, 3)
	require.NoError(s.T(), err)
	_, err = PurchaseSingle(s.db, s.notifier, s.buyer.ID, a.ID, 2)
	require.NoError(s.T(), err)
	_, err = PurchaseSingle(s.db, s.notifier, s.buyer.ID, b.ID, 1)
	require.NoError(s.T(), err)

	stats, err := GetSellerStats(s.db, s.seller.ID)
	require.NoError(s.T(), err)

	require.True(s.T(), stats.TotalRevenue.Equal(decimal.NewFromInt(55)),
		"got revenue %s", stats.TotalRevenue)
	require.Equal(s.T(), 3, stats.TotalOrders)
	require.Equal(s.T(), 6, stats.TotalUnits)
	require.Equal(s.T(), map[string]int{"A": 5, "B": 1}, stats.ProductSales)
}

func (s *CheckoutTestSuite) TestSellerStatsEmpty() {
	stats, err := GetSellerStats(s.db, s.seller.ID)
	require.NoError(s.T(), err)
	require.True(s.T(), stats.TotalRevenue.IsZero())
	require.Zero(s.T(), stats.TotalOrders)
	require.Zero(s.T(), stats.TotalUnits)
	require.Empty(s.T(), stats.ProductSales)
}

func (s *CheckoutTestSuite) TestSellerStatsUnknownSeller() {
	_, err := GetSellerStats(s.db, 9999)
	require.ErrorIs(s.T(), err, models.ErrSellerNotFound)
}

func (s *CheckoutTestSuite) TestSellerStatsCountsDistinctOrders() {
	a := s.createProduct("A", 10, nil)
	b := s.createProduct("B", 5, nil)
	s.addCartLine(a.ID, 1)
	s.addCartLine(b.ID, 1)

	// One order with two lines counts once.
	_, err := Checkout(s.db, s.notifier, s.buyer.ID)
	require.NoError(s.T(), err)

	stats, err := GetSellerStats(s.db, s.seller.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, stats.TotalOrders)
	require.Equal(s.T(), 2, stats.TotalUnits)
}

func (s *CheckoutTestSuite) TestGetOrdersBySeller() {
	a := s.createProduct("A", 10, nil)
	order, err := PurchaseSingle(s.db, s.notifier, s.buyer.ID, a.ID, 3)
	require.NoError(s.T(), err)

	rows, err := GetOrdersBySeller(s.db, s.seller.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), rows, 1)

	row := rows[0]
	require.Equal(s.T(), order.ID, row.OrderID)
	require.Equal(s.T(), models.OrderStatusShipped, row.OrderStatus)
	require.Equal(s.T(), a.ID, row.ProductID)
	require.Equal(s.T(), "A", row.ProductName)
	require.Equal(s.T(), 3, row.Quantity)
	require.True(s.T(), row.Price.Equal(decimal.NewFromInt(10)))
	require.Equal(s.T(), s.buyer.ID, row.BuyerID)
	require.Equal(s.T(), "buyer", row.BuyerName)
}
