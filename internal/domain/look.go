package domain

// Season classifies when a makeup look is worn.
type Season string

// Seasons.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

// Valid reports whether s is a known season.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAll:
		return true
	}
	return false
}

// MakeupLook is a combination of cosmetics used together.
// UsedCosmetics holds cosmetic IDs by reference, not ownership; deleting a
// cosmetic prunes the reference but never deletes the look.
type MakeupLook struct {
	ID            string   `json:"id"`
	Title         string   `json:"title,omitempty"`
	Photo         []string `json:"photo"`
	UsedCosmetics []string `json:"usedCosmetics"`
	Situation     string   `json:"situation,omitempty"`
	Season        Season   `json:"season,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Memo          string   `json:"memo,omitempty"`
}

// Clone returns a deep copy.
func (m MakeupLook) Clone() MakeupLook {
	out := m
	if m.Photo != nil {
		out.Photo = append([]string(nil), m.Photo...)
	}
	if m.UsedCosmetics != nil {
		out.UsedCosmetics = append([]string(nil), m.UsedCosmetics...)
	}
	if m.Tags != nil {
		out.Tags = append([]string(nil), m.Tags...)
	}
	return out
}
