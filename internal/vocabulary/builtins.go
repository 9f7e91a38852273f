package vocabulary

import "github.com/xolan/croplog/internal/i18n"

// Plant is a selectable crop in the vocabulary.
type Plant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// PlantInput is a user-defined plant before its id is derived.
type PlantInput struct {
	Name  string
	Color string
	Icon  string
}

// PlaceholderColor and PlaceholderIcon are used for plant ids that are not
// in the vocabulary.
const (
	PlaceholderColor = "#6B7280"
	PlaceholderIcon  = "🌱"
)

// Swatch is a named colour offered when adding a plant.
type Swatch struct {
	Key   string // translation key
	Value string
}

// Palette lists the colours offered for custom plants.
var Palette = []Swatch{
	{Key: "colorGreen", Value: "#16A34A"},
	{Key: "colorRed", Value: "#DC2626"},
	{Key: "colorBlue", Value: "#2563EB"},
	{Key: "colorOrange", Value: "#EA580C"},
	{Key: "colorPurple", Value: "#7C3AED"},
	{Key: "colorBrown", Value: "#8B4513"},
	{Key: "colorPink", Value: "#EC4899"},
	{Key: "colorYellow", Value: "#EAB308"},
}

// Icons lists the icons offered for custom plants.
var Icons = []string{"🌱", "🌿", "🌾", "🌻", "🌹", "🌷", "🌺", "🌸", "🥕", "🥬", "🥒", "🍅", "🍆", "🌶️", "🥔", "🧄", "🧅"}

var builtinPlants = map[i18n.Language][]Plant{
	i18n.Greek: {
		{ID: "vine", Name: "Αμπέλι", Color: "#8B4513", Icon: "🍇"},
		{ID: "tomato", Name: "Ντομάτα", Color: "#DC2626", Icon: "🍅"},
		{ID: "cucumber", Name: "Αγγούρι", Color: "#16A34A", Icon: "🥒"},
		{ID: "eggplant", Name: "Μελιτζάνα", Color: "#7C3AED", Icon: "🍆"},
		{ID: "pepper", Name: "Πιπεριά", Color: "#EA580C", Icon: "🌶️"},
	},
	i18n.English: {
		{ID: "vine", Name: "Vine", Color: "#8B4513", Icon: "🍇"},
		{ID: "tomato", Name: "Tomato", Color: "#DC2626", Icon: "🍅"},
		{ID: "cucumber", Name: "Cucumber", Color: "#16A34A", Icon: "🥒"},
		{ID: "eggplant", Name: "Eggplant", Color: "#7C3AED", Icon: "🍆"},
		{ID: "pepper", Name: "Pepper", Color: "#EA580C", Icon: "🌶️"},
	},
}

var builtinTasks = map[i18n.Language][]string{
	i18n.Greek: {
		"Πότισμα",
		"Λίπανση",
		"Κλάδεμα",
		"Σπορά",
		"Φύτευση",
		"Συγκομιδή",
		"Ψεκασμός",
		"Καλλιέργεια εδάφους",
		"Άλλο",
	},
	i18n.English: {
		"Watering",
		"Fertilizing",
		"Pruning",
		"Sowing",
		"Planting",
		"Harvesting",
		"Spraying",
		"Soil cultivation",
		"Other",
	},
}

// BuiltinPlants returns a copy of the built-in plants for lang, falling back
// to the default language for unknown tags.
func BuiltinPlants(lang i18n.Language) []Plant {
	plants, ok := builtinPlants[lang]
	if !ok {
		plants = builtinPlants[i18n.Default]
	}
	return append([]Plant(nil), plants...)
}

// BuiltinTasks returns a copy of the built-in tasks for lang.
func BuiltinTasks(lang i18n.Language) []string {
	tasks, ok := builtinTasks[lang]
	if !ok {
		tasks = builtinTasks[i18n.Default]
	}
	return append([]string(nil), tasks...)
}
