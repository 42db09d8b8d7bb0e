package models

// HabitIcon is one entry in the fixed icon catalog. Keys are stable
// identifiers stored on habits; glyphs are what the terminal renders.
type HabitIcon struct {
	Key      string
	Glyph    string
	Category string
}

// IconCatalog is the full set of selectable habit icons.
var IconCatalog = []HabitIcon{
	{"Dumbbell", "🏋", "Health"},
	{"Running", "🏃", "Health"},
	{"Yoga", "🧘", "Health"},
	{"Heart", "♥", "Health"},
	{"Water", "💧", "Health"},
	{"Steps", "🚶", "Health"},

	{"Book", "📖", "Study"},
	{"Notebook", "📓", "Study"},
	{"Graduation", "🎓", "Study"},
	{"Laptop", "💻", "Study"},
	{"Code", "⌨", "Study"},
	{"Brain", "🧠", "Study"},

	{"Meditation", "🪷", "Mindfulness"},
	{"Lotus", "🌸", "Mindfulness"},
	{"Candle", "🕯", "Mindfulness"},
	{"Moon", "🌙", "Mindfulness"},
	{"Breath", "🌬", "Mindfulness"},

	{"Apple", "🍎", "Lifestyle"},
	{"Leaf", "🍃", "Lifestyle"},
	{"Bed", "🛏", "Lifestyle"},
	{"Alarm", "⏰", "Lifestyle"},
	{"Sun", "☀", "Lifestyle"},

	{"Music", "🎵", "Creative"},
	{"Brush", "🖌", "Creative"},
	{"Camera", "📷", "Creative"},
	{"Pencil", "✏", "Creative"},
	{"Mic", "🎤", "Creative"},

	{"Check", "✔", "Generic"},
	{"Star", "★", "Generic"},
	{"Target", "🎯", "Generic"},
}

// IconByKey looks up a catalog entry, falling back to Star for unknown keys.
func IconByKey(key string) HabitIcon {
	for _, icon := range IconCatalog {
		if icon.Key == key {
			return icon
		}
	}
	return HabitIcon{Key: "Star", Glyph: "★", Category: "Generic"}
}

// ValidIconKey reports whether key names a catalog entry.
func ValidIconKey(key string) bool {
	for _, icon := range IconCatalog {
		if icon.Key == key {
			return true
		}
	}
	return false
}
