package storage

import "coffeehouse/coffee-svc/internal/domain"

var categoryOrder = []domain.Category{
	domain.CategoryPopular,
	domain.CategoryLatte,
	domain.CategoryEspresso,
}

// Prices are whole KES.
var staticItems = []domain.CatalogItem{
	{ID: 1, Category: domain.CategoryPopular, Name: "Capuccino", Price: 250,
		Image: "https://images.unsplash.com/photo-1594261956806-3ad03785c9b4?auto=format&fit=crop&w=600&q=60"},
	{ID: 2, Category: domain.CategoryPopular, Name: "Latte", Price: 230,
		Image: "https://images.unsplash.com/photo-1503481766315-7a586b20f66d?auto=format&fit=crop&w=600&q=60"},
	{ID: 3, Category: domain.CategoryPopular, Name: "Espresso", Price: 180,
		Image: "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?auto=format&fit=crop&w=600&q=60"},
	{ID: 4, Category: domain.CategoryPopular, Name: "Americano", Price: 200,
		Image: "https://images.unsplash.com/photo-1544681369-310c49478a6a?auto=format&fit=crop&w=600&q=60"},
	{ID: 5, Category: domain.CategoryPopular, Name: "Caffe Mocha", Price: 280,
		Image: "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?auto=format&fit=crop&w=600&q=60"},
	{ID: 6, Category: domain.CategoryPopular, Name: "Machiatto", Price: 260,
		Image: "https://images.unsplash.com/photo-1600352090511-0f801b8f3d67?auto=format&fit=crop&w=600&q=60"},

	{ID: 7, Category: domain.CategoryLatte, Name: "Coconut Latte", Price: 300,
		Image: "https://image.shutterstock.com/image-photo/coconut-latte-on-wooden-table-600w-536543152.jpg"},
	{ID: 8, Category: domain.CategoryLatte, Name: "Hazelnut Latte", Price: 300,
		Image: "https://image.shutterstock.com/image-photo/festive-hot-chocolate-whipped-cream-600w-1176402949.jpg"},
	{ID: 9, Category: domain.CategoryLatte, Name: "Caramel Machiatto Latte", Price: 320,
		Image: "https://image.shutterstock.com/image-photo/hot-almond-caramel-macchiato-600w-1345916870.jpg"},
	{ID: 10, Category: domain.CategoryLatte, Name: "Cinammon Dolce Latte", Price: 310,
		Image: "https://image.shutterstock.com/image-photo/masala-pulled-tea-chai-latte-600w-520223158.jpg"},
	{ID: 11, Category: domain.CategoryLatte, Name: "Caffe Latte", Price: 250,
		Image: "https://image.shutterstock.com/image-photo/cup-freshly-made-delicious-cappuccino-600w-1903123363.jpg"},
	{ID: 12, Category: domain.CategoryLatte, Name: "Caffe Mocha", Price: 280,
		Image: "https://image.shutterstock.com/image-photo/coffee-mocha-on-wood-desk-600w-374380330.jpg"},

	{ID: 13, Category: domain.CategoryEspresso, Name: "Ristretto", Price: 170,
		Image: "https://images.unsplash.com/photo-1522922235461-912955b0772b?auto=format&fit=crop&w=600&q=60"},
	{ID: 14, Category: domain.CategoryEspresso, Name: "Doppio", Price: 190,
		Image: "https://images.unsplash.com/photo-1630021439100-74a32ab42d3e?auto=format&fit=crop&w=600&q=60"},
	{ID: 15, Category: domain.CategoryEspresso, Name: "Capuccino", Price: 250,
		Image: "https://images.unsplash.com/photo-1594261956806-3ad03785c9b4?auto=format&fit=crop&w=600&q=60"},
	{ID: 16, Category: domain.CategoryEspresso, Name: "Mocha", Price: 270,
		Image: "https://image.shutterstock.com/image-photo/ice-mocha-coffee-600w-1374608741.jpg"},
	{ID: 17, Category: domain.CategoryEspresso, Name: "Espresso Machiatto", Price: 210,
		Image: "https://image.shutterstock.com/image-photo/breakfast-cafe-useful-drink-dessert-600w-564073720.jpg"},
	{ID: 18, Category: domain.CategoryEspresso, Name: "Americano", Price: 200,
		Image: "https://images.unsplash.com/photo-1544681369-310c49478a6a?auto=format&fit=crop&w=600&q=60"},
	{ID: 19, Category: domain.CategoryEspresso, Name: "Espresso", Price: 180,
		Image: "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?auto=format&fit=crop&w=600&q=60"},
}

// SeedItems returns a copy of the built-in drink tables.
func SeedItems() []domain.CatalogItem {
	items := make([]domain.CatalogItem, len(staticItems))
	copy(items, staticItems)
	return items
}

// StaticCatalog serves the built-in drink tables when no database is configured.
type StaticCatalog struct{}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

func (StaticCatalog) ListCategories() ([]domain.Category, error) {
	categories := make([]domain.Category, len(categoryOrder))
	copy(categories, categoryOrder)
	return categories, nil
}

func (StaticCatalog) ListItems(category domain.Category) ([]domain.CatalogItem, error) {
	items := []domain.CatalogItem{}
	for _, item := range staticItems {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

func (StaticCatalog) GetItem(id int) (*domain.CatalogItem, error) {
	for _, item := range staticItems {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
