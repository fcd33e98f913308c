package models

// Bounds and field limits shared by validation and storage.
const (
	EmailMaxLength    = 254
	UsernameMaxLength = 150
	NameMaxLength     = 150

	TagNameMaxLength        = 200
	TagSlugMaxLength        = 200
	TagColorMaxLength       = 7
	IngredientNameMaxLength = 200
	MeasurementMaxLength    = 200
	RecipeNameMaxLength     = 200

	CookingTimeMin = 1
	CookingTimeMax = 7000
	AmountMin      = 1
	AmountMax      = 10000
)

// AllowedUsernameSymbols matches every character permitted in a username.
const AllowedUsernameSymbols = `[A-Za-z0-9_.@+-]`

// AllowedColorPattern matches a #RGB or #RRGGBB hex color.
const AllowedColorPattern = `^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`

// ShoppingCartFileName is the attachment name for the exported shopping list.
const ShoppingCartFileName = "shopping_cart.txt"
