package moviebox

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Rating carries the upstream imdbRatingValue field, which arrives as
// either a JSON string or a number depending on the endpoint.
type Rating string

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rating) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*r = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Rating(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Rating(n.String())
	return nil
}

// Float parses the rating as a number. The second return is false when
// the rating is absent or non-numeric.
func (r Rating) Float() (float64, bool) {
	s := strings.TrimSpace(string(r))
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Cover is the artwork attachment on catalog entries.
type Cover struct {
	URL string `json:"url"`
}

// Item is one catalog row from a listing or search response.
type Item struct {
	Title       string `json:"title"`
	SubjectID   string `json:"subjectId"`
	Cover       Cover  `json:"cover"`
	SubjectType int    `json:"subjectType"`
	IMDBRating  Rating `json:"imdbRatingValue"`
}

// IsTV reports whether the entry is episodic. Anything that is not
// explicitly a series counts as a movie.
func (i Item) IsTV() bool {
	return i.SubjectType == 2
}

// Staff is one cast or crew credit on a subject.
type Staff struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	AvatarURL string `json:"avatarUrl"`
	StaffType int    `json:"staffType"`
}

// Dub is an alternate-language variant of a subject.
type Dub struct {
	SubjectID string `json:"subjectId"`
	LanName   string `json:"lanName"`
}

// Subject is the full detail payload for one catalog entry.
type Subject struct {
	SubjectID   string  `json:"subjectId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ReleaseDate string  `json:"releaseDate"`
	Duration    string  `json:"duration"`
	Genre       string  `json:"genre"`
	IMDBRating  Rating  `json:"imdbRatingValue"`
	Cover       Cover   `json:"cover"`
	SubjectType int     `json:"subjectType"`
	StaffList   []Staff `json:"staffList"`
	Dubs        []Dub   `json:"dubs"`
}

// IsTV reports whether the subject is episodic.
func (s *Subject) IsTV() bool {
	return s.SubjectType == 2
}

// Season describes one season's episode extent.
type Season struct {
	Se    int `json:"se"`
	MaxEp int `json:"maxEp"`
}

// Stream is one playable source from a play-info response.
type Stream struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Format      string `json:"format"`
	Resolutions string `json:"resolutions"`
	SignCookie  string `json:"signCookie"`
}

// Caption is one subtitle track from a caption listing.
type Caption struct {
	URL      string `json:"url"`
	Language string `json:"language"`
	LanName  string `json:"lanName"`
	Lan      string `json:"lan"`
}

// Label returns the best available language label for the track.
func (c Caption) Label() string {
	for _, candidate := range []string{c.Language, c.LanName, c.Lan} {
		if candidate != "" {
			return candidate
		}
	}
	return "Unknown"
}
