// Package analytics serves the admin dashboard figures. The numbers are
// fixed demo data; nothing here is measured.
package analytics

// StatCard is one headline figure.
type StatCard struct {
	Label string
	Value string
	Trend string
	Color string
}

// Point is one day of a weekly series.
type Point struct {
	Day   string
	Value int
}

// Transaction is a row of the recent activity table.
type Transaction struct {
	User   string
	Item   string
	Amount string
	Status string
}

// Dashboard holds everything the admin page shows.
type Dashboard struct {
	Cards        []StatCard
	Revenue      []Point
	UserGrowth   []Point
	Transactions []Transaction
}

// Peak returns the largest value in a series, at least 1.
func Peak(series []Point) int {
	peak := 1
	for _, p := range series {
		if p.Value > peak {
			peak = p.Value
		}
	}
	return peak
}

// MockDashboard returns the demo dashboard.
func MockDashboard() Dashboard {
	return Dashboard{
		Cards: []StatCard{
			{Label: "Total Revenue", Value: "$45,231", Trend: "+12.5%", Color: "emerald"},
			{Label: "Active Users", Value: "2,345", Trend: "+12.5%", Color: "blue"},
			{Label: "Items Sold", Value: "12,543", Trend: "+12.5%", Color: "violet"},
			{Label: "Avg. Session", Value: "24m", Trend: "+12.5%", Color: "orange"},
		},
		Revenue: []Point{
			{Day: "Mon", Value: 4000},
			{Day: "Tue", Value: 3000},
			{Day: "Wed", Value: 2000},
			{Day: "Thu", Value: 2780},
			{Day: "Fri", Value: 1890},
			{Day: "Sat", Value: 2390},
			{Day: "Sun", Value: 3490},
		},
		UserGrowth: []Point{
			{Day: "Mon", Value: 240},
			{Day: "Tue", Value: 139},
			{Day: "Wed", Value: 980},
			{Day: "Thu", Value: 390},
			{Day: "Fri", Value: 480},
			{Day: "Sat", Value: 380},
			{Day: "Sun", Value: 430},
		},
		Transactions: []Transaction{
			{User: "Player_199", Item: "Cloud Sofa", Amount: "+500", Status: "Completed"},
			{User: "Player_299", Item: "Cloud Sofa", Amount: "+500", Status: "Completed"},
			{User: "Player_399", Item: "Cloud Sofa", Amount: "+500", Status: "Completed"},
			{User: "Player_499", Item: "Cloud Sofa", Amount: "+500", Status: "Completed"},
		},
	}
}
