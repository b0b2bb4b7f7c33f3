package http

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/spotlight"
)

// DefaultCurseForgeURL is the CurseForge API base URL.
const DefaultCurseForgeURL = "https://api.curseforge.com"

// minecraftGameID is CurseForge's game id for Minecraft.
const minecraftGameID = "432"

var (
	_ spotlight.ResourceService   = (*CurseForgeService)(nil)
	_ spotlight.ResourceDescriber = (*CurseForgeService)(nil)
)

// CurseForgeService searches the CurseForge catalog.
type CurseForgeService struct {
	c *client

	// Converter turns description HTML into Markdown.
	Converter spotlight.Converter
}

// NewCurseForgeService returns a service using DefaultCurseForgeURL unless
// overridden by WithBaseURL. Set the API key with WithAPIKey.
func NewCurseForgeService(converter spotlight.Converter, opts ...Option) *CurseForgeService {
	return &CurseForgeService{
		c:         newClient(DefaultCurseForgeURL, opts),
		Converter: converter,
	}
}

// ClassID returns the CurseForge class id for a resource type.
func ClassID(t spotlight.ResourceType) int {
	switch t {
	case spotlight.ResourceMod:
		return 6
	case spotlight.ResourceModPack:
		return 4471
	case spotlight.ResourceResourcePack:
		return 12
	case spotlight.ResourceShaderPack:
		return 6552
	case spotlight.ResourceWorld:
		return 17
	case spotlight.ResourceDataPack:
		return 6945
	}
	return 0
}

// SortField returns the CurseForge sort field id for a sort name.
// Unknown names sort by popularity.
func SortField(sortBy string) int {
	switch sortBy {
	case "Featured":
		return 1
	case "Popularity":
		return 2
	case "LastUpdated":
		return 3
	case "Name":
		return 4
	case "Author":
		return 5
	case "TotalDownloads":
		return 6
	}
	return 2
}

type curseForgeMod struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Links struct {
		WebsiteURL string `json:"websiteUrl"`
	} `json:"links"`
	Summary string `json:"summary"`
	Logo    *struct {
		ThumbnailURL string `json:"thumbnailUrl"`
		URL          string `json:"url"`
	} `json:"logo"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	DownloadCount int64     `json:"downloadCount"`
	DateModified  time.Time `json:"dateModified"`
}

type curseForgeSearchResponse struct {
	Data       []curseForgeMod `json:"data"`
	Pagination struct {
		Index       int `json:"index"`
		PageSize    int `json:"pageSize"`
		ResultCount int `json:"resultCount"`
		TotalCount  int `json:"totalCount"`
	} `json:"pagination"`
}

type curseForgeDescriptionResponse struct {
	Data string `json:"data"`
}

// FetchResourceListByName searches CurseForge mods of query.Type in Minecraft.
func (s *CurseForgeService) FetchResourceListByName(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	classID := ClassID(query.Type)
	if classID == 0 {
		return nil, spotlight.Errorf(spotlight.EINVALID, "curseforge does not host %s", query.Type)
	}

	sortField := SortField(query.SortBy)
	sortOrder := "desc"
	if sortField == 4 {
		sortOrder = "asc"
	}

	params := url.Values{}
	params.Set("gameId", minecraftGameID)
	params.Set("classId", strconv.Itoa(classID))
	params.Set("searchFilter", query.Query)
	if query.GameVersion != "" && query.GameVersion != spotlight.AllFilter {
		params.Set("gameVersion", query.GameVersion)
	}
	if id, err := strconv.Atoi(query.Tag); err == nil {
		params.Set("categoryId", strconv.Itoa(id))
	}
	params.Set("sortField", strconv.Itoa(sortField))
	params.Set("sortOrder", sortOrder)
	params.Set("index", strconv.Itoa(query.Offset()))
	params.Set("pageSize", strconv.Itoa(query.PageSize))

	var res curseForgeSearchResponse
	if err := s.c.getJSON(ctx, "/v1/mods/search", params, s.header(), &res); err != nil {
		return nil, err
	}

	page := &spotlight.ResourcePage{
		List:     make([]*spotlight.Resource, 0, len(res.Data)),
		Total:    res.Pagination.TotalCount,
		PageSize: res.Pagination.PageSize,
	}
	if res.Pagination.PageSize > 0 {
		page.Page = res.Pagination.Index / res.Pagination.PageSize
	}
	for _, m := range res.Data {
		page.List = append(page.List, m.resource(query.Type))
	}
	return page, nil
}

// FetchResourceDescription returns the mod description converted to Markdown.
func (s *CurseForgeService) FetchResourceDescription(ctx context.Context, source spotlight.Source, id string) (string, error) {
	if source != spotlight.SourceCurseForge {
		return "", spotlight.Errorf(spotlight.EINVALID, "curseforge cannot describe %s resources", source)
	}
	if id == "" {
		return "", spotlight.Errorf(spotlight.EINVALID, "resource id required")
	}

	var res curseForgeDescriptionResponse
	if err := s.c.getJSON(ctx, "/v1/mods/"+url.PathEscape(id)+"/description", nil, s.header(), &res); err != nil {
		return "", err
	}
	if s.Converter == nil || strings.TrimSpace(res.Data) == "" {
		return res.Data, nil
	}
	return s.Converter.Convert(res.Data)
}

func (s *CurseForgeService) header() http.Header {
	h := http.Header{}
	if s.c.apiKey != "" {
		h.Set("x-api-key", s.c.apiKey)
	}
	return h
}

func (m curseForgeMod) resource(t spotlight.ResourceType) *spotlight.Resource {
	r := &spotlight.Resource{
		ID:          strconv.Itoa(m.ID),
		Type:        t,
		Source:      spotlight.SourceCurseForge,
		Slug:        m.Slug,
		Name:        m.Name,
		Description: m.Summary,
		Downloads:   m.DownloadCount,
		LastUpdated: m.DateModified,
		WebsiteURL:  m.Links.WebsiteURL,
		Tags:        make([]string, 0, len(m.Categories)),
	}
	if m.Logo != nil {
		r.IconSrc = m.Logo.URL
	}
	for _, c := range m.Categories {
		r.Tags = append(r.Tags, c.Name)
	}
	return r
}
