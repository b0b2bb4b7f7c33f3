package spotlight

import (
	"context"
	"fmt"
	"net/url"
)

// ResultKind identifies where a search result came from.
// Results are grouped by kind for display.
type ResultKind string

// ResultKind constants.
const (
	KindPage       ResultKind = "page"
	KindInstance   ResultKind = "instance"
	KindPlayer     ResultKind = "player"
	KindCurseForge ResultKind = "curseforge"
	KindModrinth   ResultKind = "modrinth"
)

// KindForSource returns the result kind used for resources of a source.
func KindForSource(s Source) ResultKind {
	if s == SourceCurseForge {
		return KindCurseForge
	}
	return KindModrinth
}

// Title returns the group heading for the kind.
func (k ResultKind) Title() string {
	switch k {
	case KindPage:
		return "Pages"
	case KindInstance:
		return "Instances"
	case KindPlayer:
		return "Players"
	case KindCurseForge:
		return "CurseForge"
	case KindModrinth:
		return "Modrinth"
	}
	return string(k)
}

// Target is what happens when a result is activated: either a Route to
// navigate to or an Intent to open a modal.
type Target interface {
	isTarget()
}

// Route is a navigation target inside the launcher.
type Route string

func (Route) isTarget() {}

// Modal names opened by intents.
const (
	ModalDownloadSpecificResource = "download-specific-resource"
	ModalDownloadResource         = "download-resource"
	ModalDownloadModpack          = "download-modpack"
)

// Intent asks the host to open a modal.
type Intent struct {
	Modal string

	// Resource is set for ModalDownloadSpecificResource.
	Resource *Resource

	// Initial search state for the resource search modals.
	Query  string
	Source Source
	Type   ResourceType
}

func (Intent) isTarget() {}

// Host performs result activations on behalf of the search UI.
type Host interface {
	Navigate(ctx context.Context, route string) error
	OpenModal(ctx context.Context, intent Intent) error
}

// Result is a single search result. Concrete types are PageResult,
// PlayerResult, InstanceResult, ResourceResult and ShortcutResult.
type Result interface {
	Kind() ResultKind
	Title() string
	Description() string
	Icon() string
	Target() Target
}

// Translatable is implemented by results that carry translated text.
type Translatable interface {
	TranslatedTitle() string
	TranslatedDescription() string
}

// Tagged is implemented by results that carry tags.
type Tagged interface {
	Tags() []string
}

// Activate runs the result's target against host.
func Activate(ctx context.Context, host Host, r Result) error {
	switch t := r.Target().(type) {
	case Route:
		return host.Navigate(ctx, string(t))
	case Intent:
		return host.OpenModal(ctx, t)
	}
	return Errorf(EINVALID, "result %q has no target", r.Title())
}

// DisplayTitle returns "translated | original" when translation is shown
// and available, otherwise the original title.
func DisplayTitle(r Result, showTranslation bool) string {
	if tr, ok := r.(Translatable); ok && showTranslation && tr.TranslatedTitle() != "" {
		return tr.TranslatedTitle() + " | " + r.Title()
	}
	return r.Title()
}

// DisplayDescription prefers the translated description when shown and available.
func DisplayDescription(r Result, showTranslation bool) string {
	if tr, ok := r.(Translatable); ok && showTranslation && tr.TranslatedDescription() != "" {
		return tr.TranslatedDescription()
	}
	return r.Description()
}

// PageResult is a previously visited route.
type PageResult struct {
	Route string
}

func (r PageResult) Kind() ResultKind    { return KindPage }
func (r PageResult) Title() string       { return r.Route }
func (r PageResult) Description() string { return "Recently viewed" }
func (r PageResult) Icon() string        { return "" }
func (r PageResult) Target() Target      { return Route(r.Route) }

// PlayerResult is a local player matching the query.
type PlayerResult struct {
	Player *Player
}

func (r PlayerResult) Kind() ResultKind    { return KindPlayer }
func (r PlayerResult) Title() string       { return r.Player.Name }
func (r PlayerResult) Description() string { return r.Player.Description() }
func (r PlayerResult) Icon() string        { return r.Player.Avatar }
func (r PlayerResult) Target() Target      { return Route("/accounts") }

// InstanceResult is a local instance matching the query.
type InstanceResult struct {
	Instance *Instance
}

func (r InstanceResult) Kind() ResultKind    { return KindInstance }
func (r InstanceResult) Title() string       { return r.Instance.Name }
func (r InstanceResult) Description() string { return r.Instance.Description() }
func (r InstanceResult) Icon() string        { return r.Instance.IconSrc }

func (r InstanceResult) Target() Target {
	return Route("/instances/details/" + url.PathEscape(r.Instance.ID))
}

// ResourceResult is a remote resource found by a network search.
type ResourceResult struct {
	Resource *Resource
}

func (r ResourceResult) Kind() ResultKind              { return KindForSource(r.Resource.Source) }
func (r ResourceResult) Title() string                 { return r.Resource.Name }
func (r ResourceResult) Description() string           { return r.Resource.Description }
func (r ResourceResult) Icon() string                  { return r.Resource.IconSrc }
func (r ResourceResult) TranslatedTitle() string       { return r.Resource.TranslatedName }
func (r ResourceResult) TranslatedDescription() string { return r.Resource.TranslatedDescription }
func (r ResourceResult) Tags() []string                { return r.Resource.Tags }

func (r ResourceResult) Target() Target {
	return Intent{
		Modal:    ModalDownloadSpecificResource,
		Resource: r.Resource,
		Source:   r.Resource.Source,
		Type:     r.Resource.Type,
	}
}

// ShortcutResult opens the resource search modal prefilled with the query.
type ShortcutResult struct {
	Type   ResourceType
	Source Source
	Query  string
}

func (r ShortcutResult) Kind() ResultKind    { return KindForSource(r.Source) }
func (r ShortcutResult) Description() string { return "" }
func (r ShortcutResult) Icon() string        { return "" }

func (r ShortcutResult) Title() string {
	return fmt.Sprintf("Search %s for %q", r.Type.Label(), r.Query)
}

// Target opens the modpack modal for modpacks and the generic resource
// modal with an initial type for everything else.
func (r ShortcutResult) Target() Target {
	if r.Type == ResourceModPack {
		return Intent{Modal: ModalDownloadModpack, Query: r.Query, Source: r.Source}
	}
	return Intent{Modal: ModalDownloadResource, Query: r.Query, Source: r.Source, Type: r.Type}
}
