package moviebox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const listingPerPage = 15

// MainPageResult is one page of a curated category.
type MainPageResult struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// listingFilters are the catalog filter fields of a composite category
// key. Zero values mean unfiltered.
type listingFilters struct {
	Classify string
	Country  string
	Year     string
	Genre    string
	Sort     string
}

// parseCompositeKey splits a "channel|type;k=v;..." category key into
// its channel id and filters. Filter parts without both a key and a
// value are skipped.
func parseCompositeKey(key string) (channelID string, filters listingFilters) {
	head, rest, hasFilters := strings.Cut(key, ";")

	if _, channel, ok := strings.Cut(head, "|"); ok {
		channelID = channel
	}

	filters = listingFilters{
		Classify: "All",
		Country:  "All",
		Year:     "All",
		Genre:    "All",
		Sort:     "ForYou",
	}
	if !hasFilters {
		return channelID, filters
	}
	for _, part := range strings.Split(rest, ";") {
		name, value, ok := strings.Cut(part, "=")
		if !ok || name == "" || value == "" {
			continue
		}
		switch name {
		case "classify":
			filters.Classify = value
		case "country":
			filters.Country = value
		case "year":
			filters.Year = value
		case "genre":
			filters.Genre = value
		case "sort":
			filters.Sort = value
		}
	}
	return channelID, filters
}

type listRequest struct {
	Page     int    `json:"page"`
	PerPage  int    `json:"perPage"`
	Channel  string `json:"channelId"`
	Classify string `json:"classify"`
	Country  string `json:"country"`
	Year     string `json:"year"`
	Genre    string `json:"genre"`
	Sort     string `json:"sort"`
}

type listingEnvelope struct {
	Data struct {
		Items    []Item `json:"items"`
		Subjects []Item `json:"subjects"`
	} `json:"data"`
}

// MainPage fetches one page of a curated category. Composite keys hit
// the filtered catalog listing; plain keys hit the ranking tab of the
// same name.
func (c *Client) MainPage(ctx context.Context, key string, page int) (*MainPageResult, error) {
	if page < 1 {
		page = 1
	}

	var envelope listingEnvelope
	if strings.Contains(key, "|") {
		channelID, filters := parseCompositeKey(key)
		body, err := json.Marshal(listRequest{
			Page:     page,
			PerPage:  listingPerPage,
			Channel:  channelID,
			Classify: filters.Classify,
			Country:  filters.Country,
			Year:     filters.Year,
			Genre:    filters.Genre,
			Sort:     filters.Sort,
		})
		if err != nil {
			return nil, fmt.Errorf("encode listing request: %w", err)
		}
		if err := c.postJSON(ctx, c.baseURL+"/wefeed-mobile-bff/subject-api/list", body, &envelope); err != nil {
			return nil, err
		}
	} else {
		params := url.Values{}
		params.Set("tabId", "0")
		params.Set("categoryType", key)
		params.Set("page", strconv.Itoa(page))
		params.Set("perPage", strconv.Itoa(listingPerPage))
		if err := c.getJSON(ctx, c.endpoint("/wefeed-mobile-bff/tab/ranking-list", params), &envelope, nil); err != nil {
			return nil, err
		}
	}

	items := envelope.Data.Items
	if len(items) == 0 {
		items = envelope.Data.Subjects
	}

	result := &MainPageResult{Name: CategoryName(key), Items: make([]Item, 0, len(items))}
	for _, item := range items {
		item.Title = CleanTitle(item.Title)
		if item.Title == "" || item.SubjectID == "" {
			continue
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}
