package catalog

// Sample returns the built-in example catalog: three categories holding
// five products between them. It is the default generation input when no
// schema file is provided.
func Sample() Schema {
	return Schema{
		Categories: []Category{
			{
				ID:          1,
				Name:        "Electronics",
				Description: String("Devices like phones, computers"),
				Products: []Product{
					{ID: 1, Name: "Laptop Pro", Description: String("High-performance laptop"), Price: 1200.00, CategoryID: 1},
					{ID: 4, Name: "Smartphone X", Description: String("Latest model smartphone"), Price: 800.00, CategoryID: 1},
				},
			},
			{
				ID:          2,
				Name:        "Peripherals",
				Description: String("Computer accessories"),
				Products: []Product{
					{ID: 2, Name: "Gaming Mouse", Description: String("Ergonomic gaming mouse"), Price: 75.50, CategoryID: 2},
					{ID: 3, Name: "Mechanical Keyboard", Description: String("RGB mechanical keyboard"), Price: 150.00, CategoryID: 2},
				},
			},
			{
				ID:          3,
				Name:        "Home Appliances",
				Description: String("Appliances for home use"),
				Products: []Product{
					{ID: 5, Name: "Coffee Maker", Description: String("Automatic coffee maker"), Price: 100.00, CategoryID: 3},
				},
			},
		},
	}
}
