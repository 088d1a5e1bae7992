package assemble

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"moviebox/internal/logging"
	"moviebox/internal/moviebox"
)

func episodeRef(subjectID string, season, episode int) string {
	return fmt.Sprintf("%s|%d|%d", subjectID, season, episode)
}

func defaultEpisodeName(season, episode int) string {
	return fmt.Sprintf("S%dE%d", season, episode)
}

func defaultEpisodeDescription(season, episode int) string {
	return fmt.Sprintf("Season %d Episode %d", season, episode)
}

// ParseRef splits a "subject|season|episode" reference. Missing or
// non-numeric season and episode parts degrade to zero, which the
// play-info endpoint treats as the movie case.
func ParseRef(ref string) (subjectID string, season, episode int) {
	parts := strings.SplitN(ref, "|", 3)
	subjectID = moviebox.ExtractSubjectID(parts[0])
	if len(parts) > 1 {
		season, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		episode, _ = strconv.Atoi(parts[2])
	}
	if season < 0 {
		season = 0
	}
	if episode < 0 {
		episode = 0
	}
	return subjectID, season, episode
}

// variant is one language edition of a subject.
type variant struct {
	subjectID string
	language  string
}

// Links gathers playable streams and subtitles for an episode
// reference across every language variant of the subject. The original
// variant's play-info call is mandatory; everything after it is
// best-effort.
func (a *Assembler) Links(ctx context.Context, ref string) (*Links, error) {
	subjectID, season, episode := ParseRef(ref)

	variants := a.collectVariants(ctx, subjectID)

	result := &Links{Streams: []StreamLink{}, Subtitles: []Subtitle{}}
	for i, v := range variants {
		streams, err := a.catalog.PlayInfo(ctx, v.subjectID, season, episode)
		if err != nil {
			if i == 0 {
				return nil, err
			}
			a.logger.Debug("variant play-info failed",
				logging.String("subject_id", v.subjectID),
				logging.String("language", v.language),
				logging.Error(err))
			continue
		}
		a.appendStreams(ctx, result, v, season, episode, streams)
	}
	return result, nil
}

// collectVariants lists the subject's language editions, the original
// first. The dub listing is best-effort; without it only the original
// edition is played.
func (a *Assembler) collectVariants(ctx context.Context, subjectID string) []variant {
	originalLanguage := "Original"
	var dubs []variant

	subject, err := a.catalog.Subject(ctx, subjectID)
	if err != nil {
		a.logger.Debug("dub listing failed", logging.String("subject_id", subjectID), logging.Error(err))
	} else {
		for _, dub := range subject.Dubs {
			if dub.SubjectID == "" || dub.LanName == "" {
				continue
			}
			if dub.SubjectID == subjectID {
				originalLanguage = dub.LanName
				continue
			}
			dubs = append(dubs, variant{subjectID: dub.SubjectID, language: dub.LanName})
		}
	}

	return append([]variant{{subjectID: subjectID, language: originalLanguage}}, dubs...)
}

func (a *Assembler) appendStreams(ctx context.Context, result *Links, v variant, season, episode int, streams []moviebox.Stream) {
	label := a.titleCaser.String(v.language)
	for _, stream := range streams {
		if stream.URL == "" {
			continue
		}

		headers := map[string]string{"Referer": a.catalog.BaseURL()}
		if stream.SignCookie != "" {
			headers["Cookie"] = stream.SignCookie
		}
		result.Streams = append(result.Streams, StreamLink{
			Source:  "MovieBox " + label,
			Name:    fmt.Sprintf("MovieBox (%s)", label),
			URL:     stream.URL,
			Type:    moviebox.InferLinkType(stream.URL, stream.Format),
			Headers: headers,
			Quality: moviebox.HighestQuality(stream.Resolutions),
		})

		streamID := stream.ID
		if streamID == "" {
			streamID = episodeRef(v.subjectID, season, episode)
		}
		a.appendCaptions(ctx, result, v, streamID, true)
		a.appendCaptions(ctx, result, v, streamID, false)
	}
}

// appendCaptions collects one caption listing; failures are swallowed.
func (a *Assembler) appendCaptions(ctx context.Context, result *Links, v variant, streamID string, streamScoped bool) {
	var (
		captions []moviebox.Caption
		err      error
	)
	if streamScoped {
		captions, err = a.catalog.StreamCaptions(ctx, v.subjectID, streamID)
	} else {
		captions, err = a.catalog.ExtCaptions(ctx, v.subjectID, streamID)
	}
	if err != nil {
		a.logger.Debug("caption listing failed",
			logging.String("subject_id", v.subjectID),
			logging.String("stream_id", streamID),
			logging.Error(err))
		return
	}

	label := a.titleCaser.String(v.language)
	for _, caption := range captions {
		if caption.URL == "" {
			continue
		}
		result.Subtitles = append(result.Subtitles, Subtitle{
			URL:  caption.URL,
			Lang: fmt.Sprintf("%s (%s)", caption.Label(), label),
		})
	}
}
