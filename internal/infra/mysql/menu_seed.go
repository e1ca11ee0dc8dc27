package mysql

import "cart-service/internal/domain"

// DefaultMenu is the built-in catalog seeded on first startup.
var DefaultMenu = []domain.MenuItem{
	{
		ID:          101,
		Name:        "Double Cheddar Stack",
		Description: "Two flame-grilled beef patties, melted sharp cheddar, pickles, and our signature smoky sauce.",
		Price:       12.99,
		Category:    "burgers",
		Image:       "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=800",
		Popular:     true,
	},
	{
		ID:          102,
		Name:        "Spicy Jalapeño Crunch",
		Description: "Crispy chicken breast topped with fresh jalapeños, pepper jack cheese, and chipotle mayo.",
		Price:       10.49,
		Category:    "burgers",
		Image:       "https://images.pexels.com/photos/2983101/pexels-photo-2983101.jpeg?auto=compress&cs=tinysrgb&w=800",
		Popular:     false,
	},
	{
		ID:          103,
		Name:        "Mushroom Swiss Melt",
		Description: "Sautéed mushrooms, caramelized onions, and swiss cheese on a brioche bun.",
		Price:       11.99,
		Category:    "burgers",
		Image:       "https://images.pexels.com/photos/1251198/pexels-photo-1251198.jpeg?auto=compress&cs=tinysrgb&w=800",
		Popular:     false,
	},
	{
		ID:          201,
		Name:        "Pepperoni Feast",
		Description: "Double pepperoni, mozzarella, and san marzano tomato sauce.",
		Price:       14.99,
		Category:    "pizza",
		Image:       "https://images.pexels.com/photos/367915/pexels-photo-367915.jpeg?auto=compress&cs=tinysrgb&w=800",
		Popular:     true,
	},
	{
		ID:          202,
		Name:        "Veggie Supreme",
		Description: "Bell peppers, onions, olives, mushrooms, and cherry tomatoes.",
		Price:       13.49,
		Category:    "pizza",
		Image:       "https://images.pexels.com/photos/2619970/pexels-photo-2619970.jpeg?auto=compress&cs=tinysrgb&w=800",
		Popular:     false,
	},
	{
		ID:          301,
		Name:        "Berry Blast Smoothie",
		Description: "Strawberries, blueberries, raspberries, and greek yogurt.",
		Price:       5.99,
		Category:    "drinks",
		Image:       "https://images.pexels.com/photos/2103949/pexels-photo-2103949.jpeg?auto=compress&cs=tinysrgb&w=800",
		Popular:     true,
	},
	{
		ID:          302,
		Name:        "Iced Caramel Macchiato",
		Description: "Freshly brewed espresso with vanilla syrup, milk, and caramel drizzle.",
		Price:       4.49,
		Category:    "drinks",
		Image:       "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg?auto=compress&cs=tinysrgb&w=800",
		Popular:     false,
	},
}
