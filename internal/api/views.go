package api

import "thatsawrap/internal/models"

// ItemView is the JSON shape of a menu item
type ItemView struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Price        float64    `json:"price"`
	Calories     int        `json:"calories"`
	Instructions []string   `json:"instructions"`
	Items        []ItemView `json:"items,omitempty"`
}

// OrderView is the JSON shape of a placed order
type OrderView struct {
	Number   int        `json:"number"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
	Calories int        `json:"calories"`
	Items    []ItemView `json:"items"`
}

// CustomItemView is the JSON shape of a custom menu item
type CustomItemView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Calories int     `json:"calories"`
}

// itemType names the family an item belongs to
func itemType(item models.Item) string {
	switch item.(type) {
	case models.WrapItem:
		return "wrap"
	case models.DrinkItem:
		return "drink"
	case models.SideItem:
		return "side"
	case *models.Combo:
		return "combo"
	case *models.CustomItem:
		return "custom"
	default:
		return "item"
	}
}

// itemView renders an item for the API. Combos carry their slot items
// nested. Combo names render the way instructions do, so an unnamed
// combo shows as "Custom Combo".
func itemView(item models.Item) ItemView {
	v := ItemView{
		Name:         item.Name(),
		Type:         itemType(item),
		Price:        item.Price(),
		Calories:     item.Calories(),
		Instructions: item.Instructions(),
	}
	if v.Instructions == nil {
		v.Instructions = []string{}
	}
	if combo, ok := item.(*models.Combo); ok {
		if v.Name == "" {
			v.Name = "Custom Combo"
		}
		for _, it := range combo.Items() {
			v.Items = append(v.Items, itemView(it))
		}
	}
	return v
}

// itemViews renders a list of items, skipping nothing
func itemViews(items []models.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView(item))
	}
	return views
}

// orderView renders a placed order
func orderView(o *models.Order) OrderView {
	return OrderView{
		Number:   o.Number(),
		Subtotal: o.Subtotal(),
		Tax:      o.Tax(),
		Total:    o.Total(),
		Calories: o.Calories(),
		Items:    itemViews(o.Items()),
	}
}
