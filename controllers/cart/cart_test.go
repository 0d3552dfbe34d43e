package cartControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/models"
)

type CartTestSuite struct {
	suite.Suite
	db      *gorm.DB
	user    models.User
	product models.Product
}

func (s *CartTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(s.T(), err)
	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(s.T(), db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
	))
	s.db = db

	s.user = models.User{Username: "buyer", Password: "pw", Role: models.RoleCustomer}
	require.NoError(s.T(), db.Create(&s.user).Error)

	seller := models.User{Username: "seller", Password: "pw", Role: models.RoleSeller}
	require.NoError(s.T(), db.Create(&seller).Error)

	s.product = models.Product{Name: "widget", Price: decimal.NewFromFloat(9.99), SellerID: seller.ID}
	require.NoError(s.T(), db.Create(&s.product).Error)
}

func (s *CartTestSuite) TestAddToCartCreatesLine() {
	item, err := AddToCart(s.db, s.user.ID, s.product.ID, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, item.Quantity)
	require.Equal(s.T(), s.product.ID, item.Product.ID)
}

func (s *CartTestSuite) TestAddToCartMergesQuantities() {
	_, err := AddToCart(s.db, s.user.ID, s.product.ID, 2)
	require.NoError(s.T(), err)
	item, err := AddToCart(s.db, s.user.ID, s.product.ID, 3)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 5, item.Quantity)

	var count int64
	s.db.Model(&models.CartItem{}).Where("user_id = ?", s.user.ID).Count(&count)
	require.Equal(s.T(), int64(1), count, "merging must not duplicate lines")
}

func (s *CartTestSuite) TestAddToCartUnknownUser() {
	_, err := AddToCart(s.db, 9999, s.product.ID, 1)
	require.ErrorIs(s.T(), err, models.ErrUserNotFound)
}

func (s *CartTestSuite) TestAddToCartUnknownProduct() {
	_, err := AddToCart(s.db, s.user.ID, 9999, 1)
	require.ErrorIs(s.T(), err, models.ErrProductNotFound)
}

func (s *CartTestSuite) TestGetCart() {
	_, err := AddToCart(s.db, s.user.ID, s.product.ID, 2)
	require.NoError(s.T(), err)

	items, err := GetCart(s.db, s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), items, 1)
	require.Equal(s.T(), "widget", items[0].Product.Name)

	_, err = GetCart(s.db, 9999)
	require.ErrorIs(s.T(), err, models.ErrUserNotFound)
}

func (s *CartTestSuite) TestRemoveFromCart() {
	item, err := AddToCart(s.db, s.user.ID, s.product.ID, 1)
	require.NoError(s.T(), err)

	require.NoError(s.T(), RemoveFromCart(s.db, item.ID))

	items, err := GetCart(s.db, s.user.ID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), items)

	// Unknown ids delete nothing and still succeed.
	require.NoError(s.T(), RemoveFromCart(s.db, 9999))
}

func (s *CartTestSuite) TestClearCart() {
	_, err := AddToCart(s.db, s.user.ID, s.product.ID, 2)
	require.NoError(s.T(), err)

	require.NoError(s.T(), ClearCart(s.db, s.user.ID))

	items, err := GetCart(s.db, s.user.ID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), items)
}

func (s *CartTestSuite) TestClearEmptyCartIsNoOp() {
	require.NoError(s.T(), ClearCart(s.db, s.user.ID))
}

func (s *CartTestSuite) TestClearCartUnknownUser() {
	require.ErrorIs(s.T(), ClearCart(s.db, 9999), models.ErrUserNotFound)
}

func TestCartTestSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}
