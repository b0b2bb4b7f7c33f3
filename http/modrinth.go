package http

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/spotlight"
)

// DefaultModrinthURL is the Modrinth v2 API base URL.
const DefaultModrinthURL = "https://api.modrinth.com/v2"

var (
	_ spotlight.ResourceService   = (*ModrinthService)(nil)
	_ spotlight.ResourceDescriber = (*ModrinthService)(nil)
)

// ModrinthService searches the Modrinth catalog.
type ModrinthService struct {
	c *client
}

// NewModrinthService returns a service using DefaultModrinthURL unless
// overridden by WithBaseURL.
func NewModrinthService(opts ...Option) *ModrinthService {
	return &ModrinthService{c: newClient(DefaultModrinthURL, opts)}
}

type modrinthHit struct {
	ProjectID    string    `json:"project_id"`
	ProjectType  string    `json:"project_type"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Categories   []string  `json:"categories"`
	Downloads    int64     `json:"downloads"`
	IconURL      string    `json:"icon_url"`
	DateModified time.Time `json:"date_modified"`
}

type modrinthSearchResponse struct {
	Hits      []modrinthHit `json:"hits"`
	TotalHits int           `json:"total_hits"`
	Offset    int           `json:"offset"`
	Limit     int           `json:"limit"`
}

type modrinthProject struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// FetchResourceListByName searches Modrinth projects of query.Type.
func (s *ModrinthService) FetchResourceListByName(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !spotlight.SourceModrinth.Hosts(query.Type) {
		return nil, spotlight.Errorf(spotlight.EINVALID, "modrinth does not host %s", query.Type.Label())
	}

	facets := [][]string{{"project_type:" + string(query.Type)}}
	if query.GameVersion != "" && query.GameVersion != spotlight.AllFilter {
		facets = append(facets, []string{"versions:" + query.GameVersion})
	}
	if query.Tag != "" && query.Tag != spotlight.AllFilter {
		facets = append(facets, []string{"categories:" + query.Tag})
	}
	encodedFacets, err := json.Marshal(facets)
	if err != nil {
		return nil, err
	}

	index := query.SortBy
	if index == "" {
		index = "relevance"
	}

	params := url.Values{}
	params.Set("query", query.Query)
	params.Set("facets", string(encodedFacets))
	params.Set("offset", strconv.Itoa(query.Offset()))
	params.Set("limit", strconv.Itoa(query.PageSize))
	params.Set("index", index)

	var res modrinthSearchResponse
	if err := s.c.getJSON(ctx, "/search", params, nil, &res); err != nil {
		return nil, err
	}

	page := &spotlight.ResourcePage{
		List:     make([]*spotlight.Resource, 0, len(res.Hits)),
		Total:    res.TotalHits,
		PageSize: res.Limit,
	}
	if res.Limit > 0 {
		page.Page = res.Offset / res.Limit
	}
	for _, hit := range res.Hits {
		page.List = append(page.List, hit.resource(query.Type))
	}
	return page, nil
}

// FetchResourceDescription returns the project body, which Modrinth stores as Markdown.
func (s *ModrinthService) FetchResourceDescription(ctx context.Context, source spotlight.Source, id string) (string, error) {
	if source != spotlight.SourceModrinth {
		return "", spotlight.Errorf(spotlight.EINVALID, "modrinth cannot describe %s resources", source)
	}
	if id == "" {
		return "", spotlight.Errorf(spotlight.EINVALID, "resource id required")
	}

	var project modrinthProject
	if err := s.c.getJSON(ctx, "/project/"+url.PathEscape(id), nil, nil, &project); err != nil {
		return "", err
	}
	return project.Body, nil
}

func (h modrinthHit) resource(t spotlight.ResourceType) *spotlight.Resource {
	projectType := h.ProjectType
	if projectType == "" {
		projectType = string(t)
	}
	return &spotlight.Resource{
		ID:          h.ProjectID,
		Type:        t,
		Source:      spotlight.SourceModrinth,
		Slug:        h.Slug,
		Name:        h.Title,
		Description: h.Description,
		IconSrc:     h.IconURL,
		Tags:        h.Categories,
		Downloads:   h.Downloads,
		LastUpdated: h.DateModified,
		WebsiteURL:  "https://modrinth.com/" + projectType + "/" + h.Slug,
	}
}
