package httpserver

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain"
	authsvc "storefront/internal/service/auth"
	collectionsvc "storefront/internal/service/collection"
	customersvc "storefront/internal/service/customer"
	productsvc "storefront/internal/service/product"
	reviewsvc "storefront/internal/service/review"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const userCtxKey = "auth.user"

type AuthService interface {
	Signup(ctx context.Context, in authsvc.SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	AccessTTLSeconds() int
}

type ProductService interface {
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id int64, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	AddImage(ctx context.Context, productID int64, image string) (*domain.ProductImage, error)
	ListImages(ctx context.Context, productID int64) ([]domain.ProductImage, error)
}

type CollectionService interface {
	Create(ctx context.Context, in collectionsvc.Input) (*domain.Collection, error)
	Get(ctx context.Context, id int64) (*domain.Collection, error)
	List(ctx context.Context) ([]domain.Collection, error)
	Update(ctx context.Context, id int64, in collectionsvc.Input) (*domain.Collection, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewService interface {
	Create(ctx context.Context, productID int64, in reviewsvc.Input) (*domain.Review, error)
	Get(ctx context.Context, productID, id int64) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	Update(ctx context.Context, productID, id int64, in reviewsvc.Input) (*domain.Review, error)
	Delete(ctx context.Context, productID, id int64) error
}

type CartService interface {
	Create(ctx context.Context) (*domain.Cart, error)
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Delete(ctx context.Context, id string) error
	AddItem(ctx context.Context, cartID string, productID int64, quantity int) (*domain.CartItem, error)
	GetItem(ctx context.Context, cartID string, itemID int64) (*domain.CartItem, error)
	UpdateItem(ctx context.Context, cartID string, itemID int64, quantity int) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, cartID string, itemID int64) error
}

type CustomerService interface {
	Me(ctx context.Context, userID int64) (*domain.Customer, error)
	UpdateMe(ctx context.Context, userID int64, in customersvc.UpdateInput) (*domain.Customer, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, cartID string, userID int64) (*domain.Order, error)
	List(ctx context.Context, userID int64, isStaff bool) ([]domain.Order, error)
	Get(ctx context.Context, id, userID int64, isStaff bool) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Order, error)
}

// Deps bundles the services the router depends on.
type Deps struct {
	AuthSvc       AuthService
	ProductSvc    ProductService
	CollectionSvc CollectionService
	ReviewSvc     ReviewService
	CartSvc       CartService
	CustomerSvc   CustomerService
	OrderSvc      OrderService
	CORSOrigins   []string
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db pinger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) == 1 && deps.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}
	authRequired := authMiddleware(deps.AuthSvc)
	staffOnly := staffMiddleware()

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.signup)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
	}

	products := router.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", authRequired, staffOnly, h.createProduct)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", authRequired, staffOnly, h.updateProduct)
		products.DELETE("/:productID", authRequired, staffOnly, h.deleteProduct)

		products.GET("/:productID/reviews", h.listReviews)
		products.POST("/:productID/reviews", h.createReview)
		products.GET("/:productID/reviews/:reviewID", h.getReview)
		products.PUT("/:productID/reviews/:reviewID", h.updateReview)
		products.DELETE("/:productID/reviews/:reviewID", h.deleteReview)

		products.GET("/:productID/images", h.listImages)
		products.POST("/:productID/images", authRequired, staffOnly, h.addImage)
	}

	collections := router.Group("/collections")
	{
		collections.GET("", h.listCollections)
		collections.POST("", authRequired, staffOnly, h.createCollection)
		collections.GET("/:collectionID", h.getCollection)
		collections.PUT("/:collectionID", authRequired, staffOnly, h.updateCollection)
		collections.DELETE("/:collectionID", authRequired, staffOnly, h.deleteCollection)
	}

	carts := router.Group("/carts")
	{
		carts.POST("", h.createCart)
		carts.GET("/:cartID", h.getCart)
		carts.DELETE("/:cartID", h.deleteCart)
		carts.GET("/:cartID/items", h.listCartItems)
		carts.POST("/:cartID/items", h.addCartItem)
		carts.GET("/:cartID/items/:itemID", h.getCartItem)
		carts.PUT("/:cartID/items/:itemID", h.updateCartItem)
		carts.DELETE("/:cartID/items/:itemID", h.deleteCartItem)
	}

	customers := router.Group("/customers", authRequired)
	{
		customers.GET("/me", h.me)
		customers.PUT("/me", h.updateMe)
	}

	orders := router.Group("/orders", authRequired)
	{
		orders.POST("", h.placeOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.PATCH("/:orderID", staffOnly, h.updateOrder)
	}

	return router
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// authMiddleware resolves a Bearer token to a user and stores it on the
// gin context.
func authMiddleware(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		user, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(userCtxKey, user)
		c.Next()
	}
}

func staffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
