package moviebox

import (
	"context"
	"encoding/json"
	"fmt"
)

const searchPerPage = 10

type searchRequest struct {
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
	Keyword string `json:"keyword"`
}

type searchEnvelope struct {
	Data struct {
		Results []struct {
			Subjects []Item `json:"subjects"`
		} `json:"results"`
	} `json:"data"`
}

// Search queries the catalog by keyword. Result groups are flattened in
// response order; entries without a title or id are dropped.
func (c *Client) Search(ctx context.Context, query string) ([]Item, error) {
	body, err := json.Marshal(searchRequest{Page: 1, PerPage: searchPerPage, Keyword: query})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	var envelope searchEnvelope
	if err := c.postJSON(ctx, c.baseURL+"/wefeed-mobile-bff/subject-api/search/v2", body, &envelope); err != nil {
		return nil, err
	}

	var items []Item
	for _, group := range envelope.Data.Results {
		for _, item := range group.Subjects {
			if item.Title == "" || item.SubjectID == "" {
				continue
			}
			items = append(items, item)
		}
	}
	return items, nil
}
