package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"thatsawrap/internal/models"
)

// handleFullMenu returns every wrap, drink, side and preset combo
func (s *Server) handleFullMenu(c *gin.Context) {
	c.JSON(http.StatusOK, itemViews(models.FullMenu()))
}

// handleWraps returns the wraps on the menu
func (s *Server) handleWraps(c *gin.Context) {
	c.JSON(http.StatusOK, itemViews(models.Wraps()))
}

// handleDrinks returns the drinks on the menu, one per size
func (s *Server) handleDrinks(c *gin.Context) {
	c.JSON(http.StatusOK, itemViews(models.Drinks()))
}

// handleSides returns the sides on the menu, one per size
func (s *Server) handleSides(c *gin.Context) {
	c.JSON(http.StatusOK, itemViews(models.Sides()))
}

// handleCombos returns the four preset combos
func (s *Server) handleCombos(c *gin.Context) {
	var items []models.Item
	for _, combo := range models.Combos() {
		items = append(items, combo)
	}
	c.JSON(http.StatusOK, itemViews(items))
}

// handleSearch filters the full menu. The filters run in the order the
// storefront always uses: keywords, then type, then calories, then
// price. Keyword filtering must come first because it is the only
// filter that can pull combos in.
func (s *Server) handleSearch(c *gin.Context) {
	items := models.FullMenu()

	if q := c.Query("q"); q != "" {
		items = models.FilterKeywords(items, q)
		s.metrics.RecordSearch("keywords")
	}

	wraps := boolQuery(c, "wraps", true)
	drinks := boolQuery(c, "drinks", true)
	sides := boolQuery(c, "sides", true)
	combos := boolQuery(c, "combos", true)
	if !(wraps && drinks && sides && combos) {
		s.metrics.RecordSearch("type")
	}
	items = models.FilterType(items, wraps, drinks, sides, combos)

	calMin := intQuery(c, "caloriesmin", -1)
	calMax := intQuery(c, "caloriesmax", -1)
	if calMin >= 0 || calMax >= 0 {
		s.metrics.RecordSearch("calories")
	}
	items = models.FilterCalories(items, calMin, calMax)

	priceMin := floatQuery(c, "pricemin", -1)
	priceMax := floatQuery(c, "pricemax", -1)
	if priceMin >= 0 || priceMax >= 0 {
		s.metrics.RecordSearch("price")
	}
	items = models.FilterPrice(items, priceMin, priceMax)

	c.JSON(http.StatusOK, itemViews(items))
}

// orderItemSpec describes one requested item in an order submission
type orderItemSpec struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Size  string `json:"size,omitempty"`
	Shell string `json:"shell,omitempty"`
	ID    string `json:"id,omitempty"`
}

// orderRequest is the body of an order submission
type orderRequest struct {
	Items []orderItemSpec `json:"items"`
}

// handlePlaceOrder builds an order from the submitted item specs
func (s *Server) handlePlaceOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "an order needs at least one item"})
		return
	}

	order := models.NewOrder()
	for _, spec := range req.Items {
		item, err := s.buildItem(spec)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order.Add(item)
	}
	s.rememberOrder(order)
	s.metrics.RecordOrder(order.Total(), order.Len())

	s.log.WithFields(logrus.Fields{
		"order": order.Number(),
		"items": order.Len(),
		"total": order.Total(),
	}).Info("order placed")

	s.hub.Broadcast(OrderEvent{
		Type:   "order_placed",
		Number: order.Number(),
		Items:  order.Len(),
		Total:  order.Total(),
	})

	c.JSON(http.StatusCreated, orderView(order))
}

// handleGetOrder returns a previously placed order
func (s *Server) handleGetOrder(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order number"})
		return
	}
	order, ok := s.orderByNumber(number)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no order %d", number)})
		return
	}
	c.JSON(http.StatusOK, orderView(order))
}

// buildItem turns one spec into a catalog, combo or custom item
func (s *Server) buildItem(spec orderItemSpec) (models.Item, error) {
	switch spec.Type {
	case "wrap":
		wrap, err := newWrap(spec.Name)
		if err != nil {
			return nil, err
		}
		if spec.Shell != "" {
			shell, err := parseShell(spec.Shell)
			if err != nil {
				return nil, err
			}
			wrap.SetShell(shell)
		}
		return wrap, nil
	case "drink":
		drink, err := newDrink(spec.Name)
		if err != nil {
			return nil, err
		}
		if spec.Size != "" {
			size, err := parseSize(spec.Size)
			if err != nil {
				return nil, err
			}
			drink.SetSize(size)
		}
		return drink, nil
	case "side":
		side, err := newSide(spec.Name)
		if err != nil {
			return nil, err
		}
		if spec.Size != "" {
			size, err := parseSize(spec.Size)
			if err != nil {
				return nil, err
			}
			side.SetSize(size)
		}
		return side, nil
	case "combo":
		combo, err := models.BuildCombo(spec.Name)
		if err != nil {
			return nil, err
		}
		return combo, nil
	case "custom":
		entry, err := s.custom.Get(spec.ID)
		if err != nil {
			return nil, fmt.Errorf("custom item %q: %w", spec.ID, err)
		}
		return entry.Item, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", spec.Type)
	}
}

// customItemRequest is the body of a custom item create or update
type customItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Calories int     `json:"calories"`
}

func (r customItemRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("a custom item needs a name")
	}
	if r.Price < 0 {
		return fmt.Errorf("a custom item's price must not be negative")
	}
	if r.Calories < 0 {
		return fmt.Errorf("a custom item's calories must not be negative")
	}
	return nil
}

// handleListCustom returns every custom item
func (s *Server) handleListCustom(c *gin.Context) {
	entries := s.custom.Entries()
	views := make([]CustomItemView, 0, len(entries))
	for _, e := range entries {
		views = append(views, CustomItemView{
			ID:       e.ID,
			Name:     e.Item.Name(),
			Price:    e.Item.Price(),
			Calories: e.Item.Calories(),
		})
	}
	c.JSON(http.StatusOK, views)
}

// handleAddCustom creates a custom item and persists the list
func (s *Server) handleAddCustom(c *gin.Context) {
	var req customItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := s.custom.Add(models.NewCustomItem(req.Name, req.Price, req.Calories))
	s.saveCustom()

	c.JSON(http.StatusCreated, CustomItemView{
		ID:       entry.ID,
		Name:     entry.Item.Name(),
		Price:    entry.Item.Price(),
		Calories: entry.Item.Calories(),
	})
}

// handleUpdateCustom replaces a custom item and persists the list
func (s *Server) handleUpdateCustom(c *gin.Context) {
	var req customItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if err := s.custom.Update(id, models.NewCustomItem(req.Name, req.Price, req.Calories)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.saveCustom()

	entry, _ := s.custom.Get(id)
	c.JSON(http.StatusOK, CustomItemView{
		ID:       entry.ID,
		Name:     entry.Item.Name(),
		Price:    entry.Item.Price(),
		Calories: entry.Item.Calories(),
	})
}

// handleDeleteCustom removes a custom item and persists the list
func (s *Server) handleDeleteCustom(c *gin.Context) {
	if err := s.custom.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.saveCustom()
	c.Status(http.StatusNoContent)
}

// saveCustom persists the custom list and refreshes its gauge
func (s *Server) saveCustom() {
	if err := s.custom.Save(); err != nil {
		s.log.WithError(err).Error("saving custom items")
	}
	s.metrics.SetCustomItemCount(s.custom.Len())
}

// newWrap builds a default wrap by its menu name
func newWrap(name string) (models.WrapItem, error) {
	switch name {
	case "The Godfather":
		return models.NewTheGodfather(), nil
	case "West Side Story":
		return models.NewWestSideStory(), nil
	case "Some Like it Hot":
		return models.NewSomeLikeItHot(), nil
	case "The Wizard of Oz":
		return models.NewTheWizardOfOz(), nil
	case "Spartacus":
		return models.NewSpartacus(), nil
	default:
		return nil, fmt.Errorf("unknown wrap %q", name)
	}
}

// newDrink builds a default drink by its menu name
func newDrink(name string) (models.DrinkItem, error) {
	switch name {
	case "Forrest Gump":
		return models.NewForrestGump(), nil
	case "King Kong":
		return models.NewKingKong(), nil
	case "Singin' in the Rain":
		return models.NewSinginInTheRain(), nil
	default:
		return nil, fmt.Errorf("unknown drink %q", name)
	}
}

// newSide builds a default side by its menu name
func newSide(name string) (models.SideItem, error) {
	switch name {
	case "Snow White":
		return models.NewSnowWhite(), nil
	case "The French Connection":
		return models.NewTheFrenchConnection(), nil
	case "Yankee Doodle Dandy":
		return models.NewYankeeDoodleDandy(), nil
	default:
		return nil, fmt.Errorf("unknown side %q", name)
	}
}

// parseSize maps a wire string to a size
func parseSize(s string) (models.Size, error) {
	for _, size := range models.Sizes {
		if s == string(size) {
			return size, nil
		}
	}
	return "", fmt.Errorf("unknown size %q", s)
}

// parseShell maps a wire string to a shell
func parseShell(s string) (models.Shell, error) {
	for _, shell := range []models.Shell{models.ShellWholeGrain, models.ShellSpinach, models.ShellStromboli} {
		if s == string(shell) {
			return shell, nil
		}
	}
	return "", fmt.Errorf("unknown shell %q", s)
}

// boolQuery reads a boolean query parameter with a default
func boolQuery(c *gin.Context, name string, def bool) bool {
	v := c.Query(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// intQuery reads an integer query parameter with a default
func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// floatQuery reads a float query parameter with a default
func floatQuery(c *gin.Context, name string, def float64) float64 {
	v := c.Query(name)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
