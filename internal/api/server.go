// Package api exposes the menu, orders and custom items over HTTP.
package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"thatsawrap/internal/custom"
	"thatsawrap/internal/monitoring"
	"thatsawrap/internal/models"
)

// Server handles storefront requests
type Server struct {
	router  *gin.Engine
	log     *logrus.Logger
	metrics *monitoring.Collector
	custom  *custom.List
	hub     *Hub

	mu     sync.Mutex
	orders map[int]*models.Order
}

// NewServer creates a server around the given collaborators
func NewServer(log *logrus.Logger, metrics *monitoring.Collector, customList *custom.List) *Server {
	server := &Server{
		router:  gin.Default(),
		log:     log,
		metrics: metrics,
		custom:  customList,
		hub:     NewHub(log),
		orders:  make(map[int]*models.Order),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/ws", s.handleWebSocket)

	api := s.router.Group("/api")
	{
		api.GET("/menu", s.handleFullMenu)
		api.GET("/menu/wraps", s.handleWraps)
		api.GET("/menu/drinks", s.handleDrinks)
		api.GET("/menu/sides", s.handleSides)
		api.GET("/menu/combos", s.handleCombos)
		api.GET("/menu/search", s.handleSearch)

		api.POST("/orders", s.handlePlaceOrder)
		api.GET("/orders/:number", s.handleGetOrder)

		api.GET("/custom", s.handleListCustom)
		api.POST("/custom", s.handleAddCustom)
		api.PUT("/custom/:id", s.handleUpdateCustom)
		api.DELETE("/custom/:id", s.handleDeleteCustom)
	}
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// rememberOrder stores a placed order for later lookup
func (s *Server) rememberOrder(o *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.Number()] = o
}

// orderByNumber looks up a placed order
func (s *Server) orderByNumber(number int) (*models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[number]
	return o, ok
}
