package spotlight

import (
	"context"
	"time"
)

// ResourceType identifies a kind of downloadable resource.
type ResourceType string

// ResourceType constants. The string values match the Modrinth project types.
const (
	ResourceMod          ResourceType = "mod"
	ResourceModPack      ResourceType = "modpack"
	ResourceResourcePack ResourceType = "resourcepack"
	ResourceShaderPack   ResourceType = "shader"
	ResourceWorld        ResourceType = "world"
	ResourceDataPack     ResourceType = "datapack"
)

// ResourceTypes returns all resource types ordered by assumed popularity.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceMod,
		ResourceModPack,
		ResourceResourcePack,
		ResourceShaderPack,
		ResourceWorld,
		ResourceDataPack,
	}
}

// Label returns a human readable name for the resource type.
func (t ResourceType) Label() string {
	switch t {
	case ResourceMod:
		return "mods"
	case ResourceModPack:
		return "modpacks"
	case ResourceResourcePack:
		return "resource packs"
	case ResourceShaderPack:
		return "shader packs"
	case ResourceWorld:
		return "worlds"
	case ResourceDataPack:
		return "data packs"
	}
	return string(t)
}

// Source identifies a remote resource catalog.
type Source string

// Source constants.
const (
	SourceCurseForge Source = "CurseForge"
	SourceModrinth   Source = "Modrinth"
)

// Sources returns every known source in display order.
func Sources() []Source {
	return []Source{SourceCurseForge, SourceModrinth}
}

// ParseSource resolves a case-insensitive source name.
func ParseSource(s string) (Source, error) {
	switch s {
	case "CurseForge", "curseforge", "cf":
		return SourceCurseForge, nil
	case "Modrinth", "modrinth", "mr":
		return SourceModrinth, nil
	}
	return "", Errorf(EINVALID, "unknown resource source %q", s)
}

// Hosts reports whether the source offers the given resource type.
// Modrinth does not host worlds.
func (s Source) Hosts(t ResourceType) bool {
	if s == SourceModrinth && t == ResourceWorld {
		return false
	}
	return true
}

// DefaultSort returns the popularity ordering understood by the source.
func (s Source) DefaultSort() string {
	if s == SourceCurseForge {
		return "Popularity"
	}
	return "downloads"
}

// AllFilter disables a game version or tag filter.
const AllFilter = "All"

// Resource represents a remote resource returned by a source.
type Resource struct {
	ID                    string       `json:"id"`
	Type                  ResourceType `json:"type"`
	Source                Source       `json:"source"`
	Slug                  string       `json:"slug"`
	Name                  string       `json:"name"`
	TranslatedName        string       `json:"translatedName,omitempty"`
	Description           string       `json:"description"`
	TranslatedDescription string       `json:"translatedDescription,omitempty"`
	IconSrc               string       `json:"iconSrc"`
	Tags                  []string     `json:"tags"`
	Downloads             int64        `json:"downloads"`
	LastUpdated           time.Time    `json:"lastUpdated"`
	WebsiteURL            string       `json:"websiteUrl,omitempty"`
}

// ResourceQuery describes a paged resource search against one source.
type ResourceQuery struct {
	Type        ResourceType `json:"resourceType"`
	Query       string       `json:"searchQuery"`
	GameVersion string       `json:"gameVersion"`
	Tag         string       `json:"selectedTag"`
	SortBy      string       `json:"sortBy"`
	Source      Source       `json:"source"`
	Page        int          `json:"page"`
	PageSize    int          `json:"pageSize"`
}

// Validate returns an error if the query contains invalid fields.
func (q *ResourceQuery) Validate() error {
	if q.Type == "" {
		return Errorf(EINVALID, "resource type required")
	}
	if q.Source == "" {
		return Errorf(EINVALID, "resource source required")
	}
	if q.Page < 0 {
		return Errorf(EINVALID, "page must not be negative")
	}
	if q.PageSize <= 0 {
		return Errorf(EINVALID, "page size must be positive")
	}
	return nil
}

// Offset returns the index of the first item of the requested page.
func (q *ResourceQuery) Offset() int {
	return q.Page * q.PageSize
}

// ResourcePage is one page of resource search results.
type ResourcePage struct {
	List     []*Resource `json:"list"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// Clone returns a copy of r that shares no mutable state with it.
func (r *Resource) Clone() *Resource {
	if r == nil {
		return nil
	}
	c := *r
	c.Tags = append([]string(nil), r.Tags...)
	return &c
}

// Clone returns a deep copy of p, including every resource in List.
func (p *ResourcePage) Clone() *ResourcePage {
	if p == nil {
		return nil
	}
	c := *p
	if p.List != nil {
		c.List = make([]*Resource, len(p.List))
		for i, r := range p.List {
			c.List[i] = r.Clone()
		}
	}
	return &c
}

// ResourceService searches a remote resource catalog.
type ResourceService interface {
	// FetchResourceListByName returns one page of resources matching the query.
	// Returns EUNAVAILABLE when the source cannot be reached or rejects the request.
	FetchResourceListByName(ctx context.Context, query ResourceQuery) (*ResourcePage, error)
}

// ResourceDescriber retrieves the long-form description of a resource.
type ResourceDescriber interface {
	// FetchResourceDescription returns the resource body as Markdown.
	FetchResourceDescription(ctx context.Context, source Source, id string) (string, error)
}
