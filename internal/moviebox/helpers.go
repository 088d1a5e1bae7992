package moviebox

import (
	"regexp"
	"strconv"
	"strings"
)

var subjectIDRe = regexp.MustCompile(`subjectId=([^&]+)`)

// ExtractSubjectID pulls a subject id out of a share URL, a bare id, or
// anything in between. A subjectId query parameter wins, then the last
// path segment; otherwise the input is treated as an opaque id.
func ExtractSubjectID(text string) string {
	if match := subjectIDRe.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	if idx := strings.LastIndex(text, "/"); idx >= 0 {
		return text[idx+1:]
	}
	return text
}

// CleanTitle drops the bracketed release annotations the catalog
// appends to titles.
func CleanTitle(title string) string {
	head, _, _ := strings.Cut(title, "[")
	return head
}

// qualityLadder is ordered highest first; the first label found in a
// resolutions string wins.
var qualityLadder = []struct {
	label string
	value int
}{
	{"2160", 2160},
	{"1440", 1440},
	{"1080", 1080},
	{"720", 720},
	{"480", 480},
	{"360", 360},
	{"240", 240},
}

// HighestQuality maps a resolutions string to the best advertised
// vertical resolution. Zero means unrecognized.
func HighestQuality(resolutions string) int {
	lowered := strings.ToLower(resolutions)
	for _, quality := range qualityLadder {
		if strings.Contains(lowered, quality.label) {
			return quality.value
		}
	}
	return 0
}

// InferLinkType classifies a stream URL for playback handoff.
func InferLinkType(rawURL, format string) string {
	lowered := strings.ToLower(rawURL)
	switch {
	case strings.HasPrefix(lowered, "magnet:"):
		return "magnet"
	case strings.Contains(lowered, ".mpd"):
		return "dash"
	case strings.HasSuffix(lowered, ".torrent"):
		return "torrent"
	case strings.EqualFold(format, "hls") || strings.HasSuffix(lowered, ".m3u8"):
		return "hls"
	case strings.Contains(lowered, ".mp4") || strings.Contains(lowered, ".mkv"):
		return "video"
	default:
		return "infer"
	}
}

var durationRe = regexp.MustCompile(`(\d+)h\s*(\d+)m`)

// ParseDuration converts the catalog's "XhYm" or bare-minute duration
// strings to minutes. The second return is false when the string is
// empty or unparseable.
func ParseDuration(duration string) (int, bool) {
	if duration == "" {
		return 0, false
	}
	if match := durationRe.FindStringSubmatch(duration); match != nil {
		hours, _ := strconv.Atoi(match[1])
		minutes, _ := strconv.Atoi(match[2])
		return hours*60 + minutes, true
	}
	stripped := strings.TrimSpace(strings.ReplaceAll(duration, "m", ""))
	minutes, err := strconv.Atoi(stripped)
	if err != nil || minutes < 0 {
		return 0, false
	}
	return minutes, true
}
