package analytics

// The dashboard renders fixed illustrative figures; there is no computation
// pipeline behind them. Live order numbers come from the order module's
// stats endpoint instead.

// MonthlySales is one point on the revenue/volume chart.
type MonthlySales struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// TopProduct is one row of the best-sellers list.
type TopProduct struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// CustomerSegment is one slice of the segment pie chart.
type CustomerSegment struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// RetentionPoint is one point on the retention curve.
type RetentionPoint struct {
	Period    string `json:"period"`
	Retention int    `json:"retention"`
}

// KPI is one headline card on the dashboard.
type KPI struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// Dashboard bundles everything the admin analytics view renders.
type Dashboard struct {
	Sales       []MonthlySales    `json:"sales"`
	TopProducts []TopProduct      `json:"topProducts"`
	Segments    []CustomerSegment `json:"customerSegments"`
	Retention   []RetentionPoint  `json:"retention"`
	KPIs        []KPI             `json:"kpis"`
}
