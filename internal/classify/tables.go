package classify

type category struct {
	key  string
	tags []string
}

// categories is scanned in order; discovery order of tags follows it.
// "sunset" appears once, carrying its later definition.
var categories = []category{
	{"nature", []string{"nature", "landscape", "outdoor", "scenery"}},
	{"city", []string{"urban", "cityscape", "architecture", "downtown"}},
	{"ocean", []string{"ocean", "sea", "water", "beach", "marine"}},
	{"mountain", []string{"mountain", "hiking", "nature", "landscape"}},
	{"sunset", []string{"golden hour", "sunset", "dusk", "evening"}},
	{"sunrise", []string{"sunrise", "morning", "dawn", "sky"}},
	{"food", []string{"food", "culinary", "cooking", "restaurant"}},
	{"people", []string{"people", "lifestyle", "social", "human"}},
	{"business", []string{"business", "corporate", "professional", "office"}},
	{"technology", []string{"technology", "tech", "digital", "modern"}},
	{"travel", []string{"travel", "vacation", "tourism", "destination"}},
	{"fitness", []string{"fitness", "health", "exercise", "workout"}},
	{"abstract", []string{"abstract", "artistic", "creative", "design"}},
	{"aerial", []string{"aerial", "drone", "birds eye", "top view"}},
	{"slow", []string{"slow motion", "slo mo", "cinematic"}},
	{"time", []string{"time lapse", "timelapse", "fast motion"}},
	{"night", []string{"night", "evening", "dark", "nighttime"}},
	{"day", []string{"day", "daytime", "bright", "sunny"}},
	{"rain", []string{"rain", "weather", "wet", "storm"}},
	{"snow", []string{"snow", "winter", "cold", "white"}},
	{"fire", []string{"fire", "flame", "heat", "burning"}},
	{"water", []string{"water", "liquid", "fluid", "aqua"}},
	{"sky", []string{"sky", "clouds", "atmosphere", "aerial"}},
	{"car", []string{"car", "vehicle", "automotive", "transportation"}},
	{"drone", []string{"aerial", "drone", "birds eye", "elevated view"}},
	{"beach", []string{"beach", "coast", "shore", "seaside"}},
	{"forest", []string{"forest", "woods", "trees", "nature"}},
	{"street", []string{"street", "road", "urban", "traffic"}},
	{"building", []string{"architecture", "building", "structure", "urban"}},
	{"cloud", []string{"clouds", "sky", "weather", "atmosphere"}},
	{"woman", []string{"people", "person", "human", "lifestyle"}},
	{"man", []string{"people", "person", "human", "lifestyle"}},
	{"hand", []string{"hands", "gestures", "close-up", "details"}},
	{"camera", []string{"equipment", "filmmaking", "photography", "production"}},
	{"light", []string{"lighting", "illumination", "glow", "ambient"}},
	{"wave", []string{"ocean", "water", "waves", "coastal"}},
	{"tree", []string{"nature", "vegetation", "outdoor", "landscape"}},
	{"road", []string{"road", "highway", "journey", "travel"}},
	{"work", []string{"work", "office", "business", "professional"}},
}

var useCases = map[string][]string{
	"nature":     {"Content Creation", "Marketing", "Background", "Social Media"},
	"city":       {"Marketing", "Real Estate", "Travel", "Background"},
	"business":   {"Corporate Videos", "Marketing", "Presentations"},
	"food":       {"Restaurant Marketing", "Content Creation", "Social Media"},
	"technology": {"Tech Reviews", "Marketing", "Presentations"},
	"abstract":   {"Background", "Transitions", "Creative Projects"},
	"aerial":     {"Real Estate", "Travel", "Marketing", "Documentaries"},
	"people":     {"Social Media", "Marketing", "Lifestyle Content"},
	"travel":     {"Travel Vlogs", "Marketing", "Tourism", "Documentaries"},
}

var (
	baselineTags    = []string{"stock footage", "video clip"}
	genericUseCases = []string{"Content Creation", "Marketing", "Background", "Social Media"}
)
