package assemble

// Actor is one credited cast member.
type Actor struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Avatar    string `json:"avatar,omitempty"`
}

// Episode is one entry of the synthesized episode manifest. ID is a
// "subjectId|season|episode" reference accepted by the links command.
type Episode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Season      int    `json:"season"`
	Episode     int    `json:"episode"`
	Poster      string `json:"poster,omitempty"`
	Description string `json:"description,omitempty"`
	Aired       string `json:"aired,omitempty"`
}

// Details is the enriched subject document the load command prints.
// Nil identifier fields mean reconciliation never cleared the gate.
type Details struct {
	SubjectID       string    `json:"subjectId"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Poster          string    `json:"poster,omitempty"`
	Background      string    `json:"background,omitempty"`
	Logo            string    `json:"logo,omitempty"`
	Plot            string    `json:"plot,omitempty"`
	Year            *int      `json:"year"`
	Tags            []string  `json:"tags"`
	Actors          []Actor   `json:"actors"`
	Score           string    `json:"score,omitempty"`
	DurationMinutes *int      `json:"durationMinutes"`
	IMDBID          *string   `json:"imdbId"`
	TMDBID          *int64    `json:"tmdbId"`
	Episodes        []Episode `json:"episodes,omitempty"`
}

// StreamLink is one playable source of the links document.
type StreamLink struct {
	Source  string            `json:"source"`
	Name    string            `json:"name"`
	URL     string            `json:"url"`
	Type    string            `json:"type"`
	Headers map[string]string `json:"headers"`
	Quality int               `json:"quality,omitempty"`
}

// Subtitle is one subtitle track of the links document.
type Subtitle struct {
	URL  string `json:"url"`
	Lang string `json:"lang"`
}

// Links is the streams-and-subtitles document the links command prints.
type Links struct {
	Streams   []StreamLink `json:"streams"`
	Subtitles []Subtitle   `json:"subtitles"`
}
