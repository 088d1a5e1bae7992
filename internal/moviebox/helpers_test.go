package moviebox

import (
	"encoding/json"
	"testing"
)

func TestExtractSubjectID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"query parameter", "https://moviebox.example/detail?subjectId=123&lang=en", "123"},
		{"query parameter wins over path", "https://moviebox.example/detail/999?subjectId=123", "123"},
		{"last path segment", "https://moviebox.example/movies/456", "456"},
		{"bare id", "789", "789"},
		{"opaque string", "not a url", "not a url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractSubjectID(tc.input); got != tc.want {
				t.Errorf("ExtractSubjectID(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	if got := CleanTitle("Inception [HD 1080p]"); got != "Inception " {
		t.Errorf("got %q", got)
	}
	if got := CleanTitle("Plain Title"); got != "Plain Title" {
		t.Errorf("got %q", got)
	}
}

func TestHighestQuality(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"2160p,1080p,720p", 2160},
		{"1080P", 1080},
		{"480p,360p", 480},
		{"720", 720},
		{"", 0},
		{"HD", 0},
	}
	for _, tc := range cases {
		if got := HighestQuality(tc.input); got != tc.want {
			t.Errorf("HighestQuality(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestInferLinkType(t *testing.T) {
	cases := []struct {
		url    string
		format string
		want   string
	}{
		{"magnet:?xt=urn:btih:abc", "", "magnet"},
		{"http://cdn/stream.mpd?sig=1", "", "dash"},
		{"http://cdn/file.torrent", "", "torrent"},
		{"http://cdn/index.m3u8", "", "hls"},
		{"http://cdn/stream", "HLS", "hls"},
		{"http://cdn/movie.mp4", "", "video"},
		{"http://cdn/movie.mkv?dl=1", "", "video"},
		{"http://cdn/stream", "", "infer"},
	}
	for _, tc := range cases {
		if got := InferLinkType(tc.url, tc.format); got != tc.want {
			t.Errorf("InferLinkType(%q, %q) = %q, want %q", tc.url, tc.format, got, tc.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"2h 28m", 148, true},
		{"1h0m", 60, true},
		{"95m", 95, true},
		{"95", 95, true},
		{"", 0, false},
		{"soon", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseDuration(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseDuration(%q) = (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRatingUnmarshal(t *testing.T) {
	var payload struct {
		Rating Rating `json:"imdbRatingValue"`
	}

	if err := json.Unmarshal([]byte(`{"imdbRatingValue":"8.8"}`), &payload); err != nil {
		t.Fatal(err)
	}
	if value, ok := payload.Rating.Float(); !ok || value != 8.8 {
		t.Errorf("string rating: got (%v, %v)", value, ok)
	}

	if err := json.Unmarshal([]byte(`{"imdbRatingValue":7.5}`), &payload); err != nil {
		t.Fatal(err)
	}
	if value, ok := payload.Rating.Float(); !ok || value != 7.5 {
		t.Errorf("numeric rating: got (%v, %v)", value, ok)
	}

	if err := json.Unmarshal([]byte(`{"imdbRatingValue":null}`), &payload); err != nil {
		t.Fatal(err)
	}
	if _, ok := payload.Rating.Float(); ok {
		t.Error("null rating should not parse")
	}

	if err := json.Unmarshal([]byte(`{"imdbRatingValue":"N/A"}`), &payload); err != nil {
		t.Fatal(err)
	}
	if _, ok := payload.Rating.Float(); ok {
		t.Error("non-numeric rating should not parse")
	}
}

func TestCaptionLabel(t *testing.T) {
	if got := (Caption{Language: "en", LanName: "English"}).Label(); got != "en" {
		t.Errorf("got %q", got)
	}
	if got := (Caption{LanName: "English"}).Label(); got != "English" {
		t.Errorf("got %q", got)
	}
	if got := (Caption{Lan: "hi"}).Label(); got != "hi" {
		t.Errorf("got %q", got)
	}
	if got := (Caption{}).Label(); got != "Unknown" {
		t.Errorf("got %q", got)
	}
}

func TestCategoryListMarshalPreservesOrder(t *testing.T) {
	list := CategoryList{{Key: "b", Name: "Second"}, {Key: "a", Name: "First"}}
	payload, err := json.Marshal(list)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":"Second","a":"First"}`
	if string(payload) != want {
		t.Errorf("got %s, want %s", payload, want)
	}
}

func TestParseCompositeKeyDefaults(t *testing.T) {
	channel, filters := parseCompositeKey("1|1006")
	if channel != "1006" {
		t.Errorf("channel = %q", channel)
	}
	if filters.Classify != "All" || filters.Country != "All" || filters.Year != "All" ||
		filters.Genre != "All" || filters.Sort != "ForYou" {
		t.Errorf("unexpected defaults %+v", filters)
	}

	channel, filters = parseCompositeKey("1|2;classify=Hindi dub;country=Korea;sort=Hottest;bogus;empty=")
	if channel != "2" {
		t.Errorf("channel = %q", channel)
	}
	if filters.Classify != "Hindi dub" || filters.Country != "Korea" || filters.Sort != "Hottest" {
		t.Errorf("unexpected filters %+v", filters)
	}
	if filters.Year != "All" || filters.Genre != "All" {
		t.Errorf("untouched filters changed %+v", filters)
	}
}
