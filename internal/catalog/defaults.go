package catalog

// NoToppingID is the topping entry that renders no topping layer
const NoToppingID = "sem-granulado"

// Default returns the storefront catalog. Every call returns fresh slices.
func Default() Catalog {
	return Catalog{
		Bases: []Option{
			{ID: "tradicional", Name: "Tradicional", Style: "#8B4513"},
			{ID: "leite-ninho", Name: "Leite Ninho", Style: "#F5F5DC"},
			{ID: "morango", Name: "Morango", Style: "#FFB6C1"},
			{ID: "chocolate-branco", Name: "Chocolate Branco", Style: "#FFFACD"},
			{ID: "doce-leite", Name: "Doce de Leite", Style: "#DEB887"},
		},
		Toppings: []Option{
			{ID: "chocolate", Name: "Chocolate Granulado", Style: "#4A4A4A"},
			{ID: "colorido", Name: "Granulado Colorido", Style: "linear-gradient(45deg, #ff6b6b, #4ecdc4, #45b7d1, #f9ca24)"},
			{ID: "coco", Name: "Coco Ralado", Style: "#FFFFFF"},
			{ID: "amendoim", Name: "Amendoim Triturado", Style: "#DEB887"},
			{ID: "pistache", Name: "Pistache", Style: "#8FBC8F"},
			{ID: NoToppingID, Name: "Sem Granulado", Style: "transparent"},
		},
		DefaultBase:    "tradicional",
		DefaultTopping: "chocolate",
	}
}
