package catalog

const placeholderImage = "/placeholder.svg?height=200&width=200"

// DemoProducts returns the storefront's built-in catalog.
func DemoProducts() []*Product {
	return []*Product{
		{
			ID:          "1",
			Name:        "Wireless Bluetooth Headphones",
			Description: "Premium noise-cancelling headphones with 30-hour battery life",
			Price:       199.99,
			Image:       placeholderImage,
			Category:    "Electronics",
			Rating:      4.5,
			Reviews:     128,
			Stock:       45,
			Status:      StatusActive,
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Description: "Track your health and fitness with this advanced smartwatch",
			Price:       299.99,
			Image:       placeholderImage,
			Category:    "Electronics",
			Rating:      4.3,
			Reviews:     89,
			Stock:       23,
			Status:      StatusActive,
		},
		{
			ID:          "3",
			Name:        "Organic Cotton T-Shirt",
			Description: "Comfortable and sustainable cotton t-shirt in various colors",
			Price:       29.99,
			Image:       placeholderImage,
			Category:    "Clothing",
			Rating:      4.7,
			Reviews:     234,
			Stock:       150,
			Status:      StatusActive,
		},
		{
			ID:          "4",
			Name:        "Professional Coffee Maker",
			Description: "Brew perfect coffee every time with this premium coffee maker",
			Price:       149.99,
			Image:       placeholderImage,
			Category:    "Home & Kitchen",
			Rating:      4.4,
			Reviews:     156,
			Stock:       0,
			Status:      StatusInactive,
		},
		{
			ID:          "5",
			Name:        "Ergonomic Office Chair",
			Description: "Comfortable office chair with lumbar support and adjustable height",
			Price:       399.99,
			Image:       placeholderImage,
			Category:    "Furniture",
			Rating:      4.6,
			Reviews:     67,
			Stock:       12,
			Status:      StatusActive,
		},
		{
			ID:          "6",
			Name:        "Portable Power Bank",
			Description: "20000mAh power bank with fast charging and multiple ports",
			Price:       49.99,
			Image:       placeholderImage,
			Category:    "Electronics",
			Rating:      4.2,
			Reviews:     312,
			Stock:       200,
			Status:      StatusActive,
		},
	}
}
