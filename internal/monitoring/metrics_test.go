package monitoring

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewCollector(t *testing.T) {
	c := NewCollector()

	if c == nil {
		t.Fatal("NewCollector() returned nil")
	}
	if c.Handler() == nil {
		t.Fatal("Handler() returned nil")
	}
}

func TestCollectorExposesRecordedMetrics(t *testing.T) {
	c := NewCollector()
	c.RecordOrder(24.50, 3)
	c.RecordOrder(9.75, 1)
	c.RecordSearch("keywords")
	c.SetCustomItemCount(2)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(w, r)

	body := w.Body.String()
	if !strings.Contains(body, "orders_placed_total 2") {
		t.Errorf("metrics output missing order count:\n%s", body)
	}
	if !strings.Contains(body, `menu_searches_total{filter="keywords"} 1`) {
		t.Errorf("metrics output missing search count:\n%s", body)
	}
	if !strings.Contains(body, "custom_items 2") {
		t.Errorf("metrics output missing custom item gauge:\n%s", body)
	}
}
