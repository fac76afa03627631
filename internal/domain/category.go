package domain

import "github.com/google/uuid"

// Category is reference data; end users cannot change it.
type Category struct {
	ID      uuid.UUID
	Name    string
	IconKey string
}

// Icon describes how a client renders a category icon.
type Icon struct {
	Key   string
	Glyph string
}

// categoryIcons is the complete set of renderable icon keys.
var categoryIcons = map[string]Icon{
	"Armchair":   {Key: "Armchair", Glyph: "🪑"},
	"Sofa":       {Key: "Sofa", Glyph: "🛋️"},
	"Laptop":     {Key: "Laptop", Glyph: "💻"},
	"Smartphone": {Key: "Smartphone", Glyph: "📱"},
	"Shirt":      {Key: "Shirt", Glyph: "👕"},
	"BookOpen":   {Key: "BookOpen", Glyph: "📖"},
	"Home":       {Key: "Home", Glyph: "🏠"},
	"Gamepad2":   {Key: "Gamepad2", Glyph: "🎮"},
	"Dumbbell":   {Key: "Dumbbell", Glyph: "🏋️"},
	"Bike":       {Key: "Bike", Glyph: "🚲"},
	"Baby":       {Key: "Baby", Glyph: "🍼"},
	"Music":      {Key: "Music", Glyph: "🎵"},
	"Wrench":     {Key: "Wrench", Glyph: "🔧"},
	"Package":    {Key: "Package", Glyph: "📦"},
}

// IconFor resolves an icon key. Unknown keys report false and the caller
// renders nothing.
func IconFor(key string) (Icon, bool) {
	icon, ok := categoryIcons[key]
	return icon, ok
}

// Icon returns the category icon, if its key is known.
func (c Category) Icon() (Icon, bool) {
	return IconFor(c.IconKey)
}
