package catalog

import "shopzone/internal/utils"

// LocalCategory is the distinguished category served from the static index
// instead of the goods endpoint.
const LocalCategory = "Smartphones"

// phoneData is the built-in smartphone dataset. Identifiers live in their own
// 9xx range so they never collide with ids handed out by the remote catalog.
var phoneData = []Product{
	{
		ID:            "901",
		Name:          "Apple iPhone 15 Pro 256GB",
		MainCategory:  LocalCategory,
		SubCategory:   "Flagship",
		Brand:         "Apple",
		ActualPrice:   119990,
		DiscountPrice: utils.Float64Ptr(109990),
		Rating:        4.8,
		ImageURL:      utils.StrPtr("images/iphone-15-pro.jpg"),
		Storage:       "256GB",
		Color:         "Natural Titanium",
		OS:            "iOS",
	},
	{
		ID:           "902",
		Name:         "Apple iPhone 13 128GB",
		MainCategory: LocalCategory,
		SubCategory:  "Mid-range",
		Brand:        "Apple",
		ActualPrice:  59990,
		Rating:       4.7,
		ImageURL:     utils.StrPtr("images/iphone-13.jpg"),
		Storage:      "128GB",
		Color:        "Midnight",
		OS:           "iOS",
	},
	{
		ID:            "903",
		Name:          "Samsung Galaxy S24 Ultra 512GB",
		MainCategory:  LocalCategory,
		SubCategory:   "Flagship",
		Brand:         "Samsung",
		ActualPrice:   134990,
		DiscountPrice: utils.Float64Ptr(119990),
		Rating:        4.8,
		ImageURL:      utils.StrPtr("images/galaxy-s24-ultra.jpg"),
		Storage:       "512GB",
		Color:         "Titanium Black",
		OS:            "Android",
	},
	{
		ID:            "904",
		Name:          "Samsung Galaxy A55 256GB",
		MainCategory:  LocalCategory,
		SubCategory:   "Mid-range",
		Brand:         "Samsung",
		ActualPrice:   37990,
		DiscountPrice: utils.Float64Ptr(32990),
		Rating:        4.5,
		ImageURL:      utils.StrPtr("images/galaxy-a55.jpg"),
		Storage:       "256GB",
		Color:         "Awesome Navy",
		OS:            "Android",
	},
	{
		ID:            "905",
		Name:          "Xiaomi Redmi Note 13 Pro 256GB",
		MainCategory:  LocalCategory,
		SubCategory:   "Mid-range",
		Brand:         "Xiaomi",
		ActualPrice:   27990,
		DiscountPrice: utils.Float64Ptr(23990),
		Rating:        4.6,
		ImageURL:      utils.StrPtr("images/redmi-note-13-pro.jpg"),
		Storage:       "256GB",
		Color:         "Midnight Black",
		OS:            "Android",
	},
	{
		ID:           "906",
		Name:         "Xiaomi 14 512GB",
		MainCategory: LocalCategory,
		SubCategory:  "Flagship",
		Brand:        "Xiaomi",
		ActualPrice:  89990,
		Rating:       4.7,
		ImageURL:     utils.StrPtr("images/xiaomi-14.jpg"),
		Storage:      "512GB",
		Color:        "Jade Green",
		OS:           "Android",
	},
	{
		ID:            "907",
		Name:          "Google Pixel 8 Pro 128GB",
		MainCategory:  LocalCategory,
		SubCategory:   "Flagship",
		Brand:         "Google",
		ActualPrice:   99990,
		DiscountPrice: utils.Float64Ptr(84990),
		Rating:        4.6,
		ImageURL:      utils.StrPtr("images/pixel-8-pro.jpg"),
		Storage:       "128GB",
		Color:         "Obsidian",
		OS:            "Android",
	},
	{
		ID:           "908",
		Name:         "Google Pixel 7a 128GB",
		MainCategory: LocalCategory,
		SubCategory:  "Mid-range",
		Brand:        "Google",
		ActualPrice:  44990,
		Rating:       4.4,
		ImageURL:     utils.StrPtr("images/pixel-7a.jpg"),
		Storage:      "128GB",
		Color:        "Sea",
		OS:           "Android",
	},
	{
		ID:            "909",
		Name:          "Samsung Galaxy Z Flip5 256GB",
		MainCategory:  LocalCategory,
		SubCategory:   "Foldable",
		Brand:         "Samsung",
		ActualPrice:   99990,
		DiscountPrice: utils.Float64Ptr(79990),
		Rating:        4.3,
		ImageURL:      utils.StrPtr("images/galaxy-z-flip5.jpg"),
		Storage:       "256GB",
		Color:         "Mint",
		OS:            "Android",
	},
	{
		ID:           "910",
		Name:         "Apple iPhone SE 2022 64GB",
		MainCategory: LocalCategory,
		SubCategory:  "Budget",
		Brand:        "Apple",
		ActualPrice:  42990,
		Rating:       4.2,
		ImageURL:     utils.StrPtr("images/iphone-se-2022.jpg"),
		Storage:      "64GB",
		Color:        "Starlight",
		OS:           "iOS",
	},
	{
		ID:            "911",
		Name:          "Xiaomi Poco X6 Pro 512GB",
		MainCategory:  LocalCategory,
		SubCategory:   "Mid-range",
		Brand:         "Xiaomi",
		ActualPrice:   34990,
		DiscountPrice: utils.Float64Ptr(29990),
		Rating:        4.5,
		ImageURL:      utils.StrPtr("images/poco-x6-pro.jpg"),
		Storage:       "512GB",
		Color:         "Yellow",
		OS:            "Android",
	},
	{
		ID:           "912",
		Name:         "Samsung Galaxy S23 FE 128GB",
		MainCategory: LocalCategory,
		SubCategory:  "Mid-range",
		Brand:        "Samsung",
		ActualPrice:  49990,
		Rating:       4.4,
		ImageURL:     utils.StrPtr("images/galaxy-s23-fe.jpg"),
		Storage:      "128GB",
		Color:        "Graphite",
		OS:           "Android",
	},
}
