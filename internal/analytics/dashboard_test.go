package analytics

import "testing"

func TestMockDashboard(t *testing.T) {
	d := MockDashboard()
	if len(d.Cards) != 4 {
		t.Errorf("len(Cards) %d, want 4", len(d.Cards))
	}
	if len(d.Revenue) != 7 || len(d.UserGrowth) != 7 {
		t.Errorf("series lengths %d/%d, want 7/7", len(d.Revenue), len(d.UserGrowth))
	}
	if d.Revenue[0].Day != "Mon" || d.Revenue[6].Day != "Sun" {
		t.Errorf("revenue should run Mon..Sun, got %s..%s", d.Revenue[0].Day, d.Revenue[6].Day)
	}
	if len(d.Transactions) != 4 {
		t.Errorf("len(Transactions) %d, want 4", len(d.Transactions))
	}
}

func TestPeak(t *testing.T) {
	if got := Peak(MockDashboard().UserGrowth); got != 980 {
		t.Errorf("Peak %d, want 980", got)
	}
	if got := Peak(nil); got != 1 {
		t.Errorf("Peak(nil) %d, want 1", got)
	}
}
