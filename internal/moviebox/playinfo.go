package moviebox

import (
	"context"
	"net/url"
	"strconv"
)

type playEnvelope struct {
	Data struct {
		Streams []Stream `json:"streams"`
	} `json:"data"`
}

// PlayInfo fetches the playable streams for a subject. Season and
// episode are 0 for movies.
func (c *Client) PlayInfo(ctx context.Context, subjectID string, season, episode int) ([]Stream, error) {
	params := url.Values{}
	params.Set("subjectId", subjectID)
	params.Set("se", strconv.Itoa(season))
	params.Set("ep", strconv.Itoa(episode))

	var envelope playEnvelope
	if err := c.getJSON(ctx, c.endpoint("/wefeed-mobile-bff/subject-api/play-info", params), &envelope, nil); err != nil {
		return nil, err
	}
	return envelope.Data.Streams, nil
}

type captionEnvelope struct {
	Data struct {
		ExtCaptions []Caption `json:"extCaptions"`
	} `json:"data"`
}

// StreamCaptions fetches the subtitle tracks attached to a stream.
func (c *Client) StreamCaptions(ctx context.Context, subjectID, streamID string) ([]Caption, error) {
	params := url.Values{}
	params.Set("subjectId", subjectID)
	params.Set("streamId", streamID)

	var envelope captionEnvelope
	if err := c.getJSONBare(ctx, c.endpoint("/wefeed-mobile-bff/subject-api/get-stream-captions", params), &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.ExtCaptions, nil
}

// ExtCaptions fetches the external subtitle tracks for a stream
// resource.
func (c *Client) ExtCaptions(ctx context.Context, subjectID, resourceID string) ([]Caption, error) {
	params := url.Values{}
	params.Set("subjectId", subjectID)
	params.Set("resourceId", resourceID)
	params.Set("episode", "0")

	var envelope captionEnvelope
	if err := c.getJSONBare(ctx, c.endpoint("/wefeed-mobile-bff/subject-api/get-ext-captions", params), &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.ExtCaptions, nil
}
