package models

// Timepoint is one entry of the static follow-up catalog. Offsets are
// calendar days relative to the operation date.
type Timepoint struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	OffsetDays int    `json:"offset_days"`
}

// Timepoints is the fixed follow-up schedule. Never mutated at runtime.
var Timepoints = []Timepoint{
	{ID: "preop", Label: "Pre-operative", OffsetDays: -7},
	{ID: "d2", Label: "Day 2", OffsetDays: 2},
	{ID: "m1", Label: "1 month", OffsetDays: 30},
	{ID: "m6", Label: "6 months", OffsetDays: 180},
	{ID: "y1", Label: "1 year", OffsetDays: 365},
}

// TimepointByID returns the catalog entry for id.
func TimepointByID(id string) (Timepoint, bool) {
	for _, tp := range Timepoints {
		if tp.ID == id {
			return tp, true
		}
	}
	return Timepoint{}, false
}

// OxfordItems are the twelve Oxford hip/knee questionnaire items. Answers are
// keyed by the item index ("0".."11"), each in [0,4], 4 = best.
var OxfordItems = []string{
	"Shopping / errands",
	"Night pain",
	"Climbing stairs",
	"Sitting down and standing up",
	"Limping",
	"Turning over in bed",
	"Dressing (socks/shoes)",
	"Washing (bath/shower)",
	"Standing for long periods",
	"Walking on uneven ground",
	"Getting in/out of a car",
	"Impact on daily life",
}

// WomacSection groups WOMAC items. Answers are keyed "<section>:<index>",
// each in [0,4], lower = better.
type WomacSection struct {
	Key   string
	Label string
	Items []string
}

var WomacSections = []WomacSection{
	{Key: "pain", Label: "Pain (5)", Items: []string{
		"Walking on flat ground", "Stairs", "At night", "Sitting/lying", "Standing",
	}},
	{Key: "stiffness", Label: "Stiffness (2)", Items: []string{
		"Stiffness on waking", "Stiffness after rest",
	}},
	{Key: "function", Label: "Function (17)", Items: []string{
		"Descending stairs", "Climbing stairs", "Rising from a chair", "Standing",
		"Bending forward", "Walking on flat ground", "Getting in/out of a car",
		"Shopping", "Putting on socks", "Getting out of bed", "Lying down in bed",
		"Drying yourself", "Using the toilet", "Standing without support",
		"Getting in/out of bath/shower", "Dressing", "Light household tasks",
	}},
}
