package moviebox

import (
	"context"
	"errors"
	"net/url"
)

type subjectEnvelope struct {
	Data *Subject `json:"data"`
}

// Subject fetches the full detail payload for a subject id. The request
// carries the play-mode header the detail endpoint expects.
func (c *Client) Subject(ctx context.Context, subjectID string) (*Subject, error) {
	params := url.Values{}
	params.Set("subjectId", subjectID)

	var envelope subjectEnvelope
	err := c.getJSON(ctx, c.endpoint("/wefeed-mobile-bff/subject-api/get", params), &envelope,
		map[string]string{"x-play-mode": "2"})
	if err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, errors.New("subject response carried no data")
	}
	return envelope.Data, nil
}

type seasonEnvelope struct {
	Data struct {
		Seasons []Season `json:"seasons"`
	} `json:"data"`
}

// SeasonInfo fetches the season/episode extents for an episodic subject.
func (c *Client) SeasonInfo(ctx context.Context, subjectID string) ([]Season, error) {
	params := url.Values{}
	params.Set("subjectId", subjectID)

	var envelope seasonEnvelope
	if err := c.getJSON(ctx, c.endpoint("/wefeed-mobile-bff/subject-api/season-info", params), &envelope, nil); err != nil {
		return nil, err
	}
	return envelope.Data.Seasons, nil
}
