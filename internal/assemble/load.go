package assemble

import (
	"context"
	"strings"

	"moviebox/internal/cinemeta"
	"moviebox/internal/logging"
	"moviebox/internal/moviebox"
	"moviebox/internal/tmdb"
)

// Load fetches a subject, reconciles it against the public index, and
// assembles the enriched detail document. The subject fetch is
// mandatory; artwork and community metadata are best-effort.
func (a *Assembler) Load(ctx context.Context, ref string) (*Details, error) {
	subjectID := moviebox.ExtractSubjectID(ref)
	subject, err := a.catalog.Subject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	title := moviebox.CleanTitle(subject.Title)
	typeName := "movie"
	if subject.IsTV() {
		typeName = "tv"
	}
	year := releaseYear(subject.ReleaseDate)
	rating, hasRating := subject.IMDBRating.Float()

	details := &Details{
		SubjectID: subjectID,
		Title:     title,
		Type:      typeName,
		Poster:    subject.Cover.URL,
		Plot:      subject.Description,
		Tags:      splitTags(subject.Genre),
		Actors:    collectActors(subject.StaffList),
		Score:     string(subject.IMDBRating),
	}
	if year > 0 {
		details.Year = &year
	}
	if minutes, ok := moviebox.ParseDuration(subject.Duration); ok {
		details.DurationMinutes = &minutes
	}

	// Release annotations in parentheses confuse the search index more
	// than they help, so reconciliation sees the bare title.
	identTitle, _, _ := strings.Cut(title, "(")
	resolved, err := a.resolver.Resolve(ctx, identTitle, year, rating, hasRating)
	if err != nil {
		return nil, err
	}
	details.TMDBID = resolved.TMDBID
	details.IMDBID = resolved.IMDBID

	details.Logo = a.fetchLogo(ctx, typeName, resolved.TMDBID)

	meta := a.fetchMeta(ctx, typeName, resolved.IMDBID)
	if meta != nil {
		if details.Poster == "" {
			details.Poster = meta.Poster
		}
		details.Background = meta.Background
		if meta.Description != "" {
			details.Plot = meta.Description
		}
		if meta.IMDBRating != "" {
			details.Score = meta.IMDBRating
		}
	}
	if details.Background == "" {
		details.Background = subject.Cover.URL
	}

	if subject.IsTV() {
		details.Episodes = a.buildEpisodes(ctx, subjectID, subject.Cover.URL, details.Poster, meta)
	}

	return details, nil
}

func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}

func splitTags(genre string) []string {
	tags := []string{}
	for _, tag := range strings.Split(genre, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// collectActors keeps cast credits in listing order, one per name.
func collectActors(staff []moviebox.Staff) []Actor {
	actors := []Actor{}
	seen := make(map[string]struct{})
	for _, member := range staff {
		if member.StaffType != 1 || member.Name == "" {
			continue
		}
		if _, dup := seen[member.Name]; dup {
			continue
		}
		seen[member.Name] = struct{}{}
		actors = append(actors, Actor{
			Name:      member.Name,
			Character: member.Character,
			Avatar:    member.AvatarURL,
		})
	}
	return actors
}

// fetchLogo picks a logo by preference ladder: the configured language,
// then English, then whatever is listed first. Failures are swallowed.
func (a *Assembler) fetchLogo(ctx context.Context, typeName string, tmdbID *int64) string {
	if a.images == nil || tmdbID == nil {
		return ""
	}
	kind := tmdb.MediaKindMovie
	if typeName == "tv" {
		kind = tmdb.MediaKindTV
	}
	images, err := a.images.GetImages(ctx, kind, *tmdbID)
	if err != nil {
		a.logger.Debug("logo lookup failed", logging.Int64("tmdb_id", *tmdbID), logging.Error(err))
		return ""
	}
	if images == nil || len(images.Logos) == 0 {
		return ""
	}

	for _, want := range []string{a.language, "en"} {
		if want == "" {
			continue
		}
		for _, logo := range images.Logos {
			if logo.ISO639_1 == want {
				return a.imageBaseURL + logo.FilePath
			}
		}
	}
	return a.imageBaseURL + images.Logos[0].FilePath
}

func (a *Assembler) fetchMeta(ctx context.Context, typeName string, imdbID *string) *cinemeta.Meta {
	if a.meta == nil || imdbID == nil {
		return nil
	}
	contentType := cinemeta.ContentTypeMovie
	if typeName == "tv" {
		contentType = cinemeta.ContentTypeSeries
	}
	meta, err := a.meta.GetMeta(ctx, contentType, *imdbID)
	if err != nil {
		a.logger.Debug("community metadata lookup failed",
			logging.String("imdb_id", *imdbID), logging.Error(err))
		return nil
	}
	return meta
}

// buildEpisodes synthesizes the episode manifest from the season
// extents, filling names and artwork from community metadata where a
// matching video exists. An unavailable or empty season listing yields
// a single synthetic first episode.
func (a *Assembler) buildEpisodes(ctx context.Context, subjectID, coverURL, poster string, meta *cinemeta.Meta) []Episode {
	var episodes []Episode

	seasons, err := a.catalog.SeasonInfo(ctx, subjectID)
	if err != nil {
		a.logger.Debug("season listing failed", logging.String("subject_id", subjectID), logging.Error(err))
		seasons = nil
	}

	for _, season := range seasons {
		seasonNumber := season.Se
		if seasonNumber == 0 {
			seasonNumber = 1
		}
		maxEpisode := season.MaxEp
		if maxEpisode == 0 {
			maxEpisode = 1
		}
		for episodeNumber := 1; episodeNumber <= maxEpisode; episodeNumber++ {
			episode := Episode{
				ID:          episodeRef(subjectID, seasonNumber, episodeNumber),
				Name:        defaultEpisodeName(seasonNumber, episodeNumber),
				Season:      seasonNumber,
				Episode:     episodeNumber,
				Poster:      coverURL,
				Description: defaultEpisodeDescription(seasonNumber, episodeNumber),
			}
			if video := cinemeta.FindVideo(meta, seasonNumber, episodeNumber); video != nil {
				if video.Name != "" {
					episode.Name = video.Name
				}
				if video.Overview != "" {
					episode.Description = video.Overview
				} else if video.Description != "" {
					episode.Description = video.Description
				}
				if video.Thumbnail != "" {
					episode.Poster = video.Thumbnail
				}
				episode.Aired = video.FirstAired
			}
			episodes = append(episodes, episode)
		}
	}

	if len(episodes) == 0 {
		fallbackPoster := coverURL
		if fallbackPoster == "" {
			fallbackPoster = poster
		}
		episodes = append(episodes, Episode{
			ID:      episodeRef(subjectID, 1, 1),
			Name:    "Episode 1",
			Season:  1,
			Episode: 1,
			Poster:  fallbackPoster,
		})
	}
	return episodes
}
