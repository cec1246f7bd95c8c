package analytics

import "context"

// Service serves the dashboard figures.
type Service interface {
	Dashboard(ctx context.Context) *Dashboard
}

type service struct{}

// NewService creates the analytics service.
func NewService() Service { return &service{} }

func (s *service) Dashboard(ctx context.Context) *Dashboard {
	return &Dashboard{
		Sales: []MonthlySales{
			{Month: "Jan", Sales: 12000, Orders: 145},
			{Month: "Feb", Sales: 15000, Orders: 178},
			{Month: "Mar", Sales: 18000, Orders: 210},
			{Month: "Apr", Sales: 22000, Orders: 245},
			{Month: "May", Sales: 25000, Orders: 289},
			{Month: "Jun", Sales: 28000, Orders: 312},
		},
		TopProducts: []TopProduct{
			{Name: "Wireless Headphones", Sales: 1250, Revenue: 249875},
			{Name: "Smart Watch", Sales: 890, Revenue: 266910},
			{Name: "Coffee Maker", Sales: 567, Revenue: 85005},
			{Name: "Office Chair", Sales: 234, Revenue: 93566},
			{Name: "Power Bank", Sales: 445, Revenue: 22225},
		},
		Segments: []CustomerSegment{
			{Name: "New Customers", Value: 35, Color: "#3B82F6"},
			{Name: "Returning Customers", Value: 45, Color: "#10B981"},
			{Name: "VIP Customers", Value: 20, Color: "#F59E0B"},
		},
		Retention: []RetentionPoint{
			{Period: "Week 1", Retention: 100},
			{Period: "Week 2", Retention: 75},
			{Period: "Week 3", Retention: 60},
			{Period: "Week 4", Retention: 45},
			{Period: "Month 2", Retention: 35},
			{Period: "Month 3", Retention: 28},
		},
		KPIs: []KPI{
			{Title: "Total Revenue", Value: "$128,450", Change: "+12.5%", Trend: "up"},
			{Title: "Total Orders", Value: "1,379", Change: "+8.2%", Trend: "up"},
			{Title: "Active Customers", Value: "2,847", Change: "+15.3%", Trend: "up"},
			{Title: "Avg Order Value", Value: "$93.20", Change: "-2.1%", Trend: "down"},
			{Title: "Customer Retention", Value: "68.5%", Change: "+5.7%", Trend: "up"},
			{Title: "Churn Rate", Value: "4.2%", Change: "-1.3%", Trend: "down"},
		},
	}
}
