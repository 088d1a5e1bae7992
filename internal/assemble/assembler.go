package assemble

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moviebox/internal/cinemeta"
	"moviebox/internal/identification"
	"moviebox/internal/logging"
	"moviebox/internal/moviebox"
	"moviebox/internal/tmdb"
)

// Catalog is the slice of the MovieBox API the assembler consumes.
type Catalog interface {
	BaseURL() string
	Subject(ctx context.Context, subjectID string) (*moviebox.Subject, error)
	SeasonInfo(ctx context.Context, subjectID string) ([]moviebox.Season, error)
	PlayInfo(ctx context.Context, subjectID string, season, episode int) ([]moviebox.Stream, error)
	StreamCaptions(ctx context.Context, subjectID, streamID string) ([]moviebox.Caption, error)
	ExtCaptions(ctx context.Context, subjectID, resourceID string) ([]moviebox.Caption, error)
}

// Resolver reconciles a catalog title against the public film/TV index.
type Resolver interface {
	Resolve(ctx context.Context, title string, year int, rating float64, hasRating bool) (identification.Result, error)
}

// ImageSource serves artwork listings for reconciled entries.
type ImageSource interface {
	GetImages(ctx context.Context, kind tmdb.MediaKind, id int64) (*tmdb.Images, error)
}

// MetaSource serves community metadata by external id.
type MetaSource interface {
	GetMeta(ctx context.Context, contentType cinemeta.ContentType, imdbID string) (*cinemeta.Meta, error)
}

// Assembler joins catalog payloads with reconciled identifiers, artwork
// and community metadata into the CLI's output documents.
type Assembler struct {
	catalog      Catalog
	resolver     Resolver
	images       ImageSource
	meta         MetaSource
	logger       *slog.Logger
	imageBaseURL string
	language     string
	titleCaser   cases.Caser
}

// Options configures an Assembler. Catalog and Resolver are required;
// nil Images or Meta disables the corresponding enrichment.
type Options struct {
	Catalog      Catalog
	Resolver     Resolver
	Images       ImageSource
	Meta         MetaSource
	Logger       *slog.Logger
	ImageBaseURL string
	Language     string
}

// New creates an Assembler.
func New(opts Options) (*Assembler, error) {
	if opts.Catalog == nil {
		return nil, errors.New("catalog required")
	}
	if opts.Resolver == nil {
		return nil, errors.New("resolver required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Assembler{
		catalog:      opts.Catalog,
		resolver:     opts.Resolver,
		images:       opts.Images,
		meta:         opts.Meta,
		logger:       logger,
		imageBaseURL: strings.TrimRight(opts.ImageBaseURL, "/"),
		language:     normalizeLanguage(opts.Language),
		titleCaser:   cases.Title(language.English),
	}, nil
}

// normalizeLanguage reduces a BCP-47-ish tag to its bare lowercase
// primary subtag for artwork matching ("en-US" matches "en" logos).
func normalizeLanguage(tag string) string {
	head, _, _ := strings.Cut(tag, "-")
	return strings.ToLower(strings.TrimSpace(head))
}
