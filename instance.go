package spotlight

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// ModLoaderType identifies the mod loader installed in an instance.
type ModLoaderType string

// ModLoaderType constants.
const (
	LoaderUnknown  ModLoaderType = "Unknown"
	LoaderFabric   ModLoaderType = "Fabric"
	LoaderForge    ModLoaderType = "Forge"
	LoaderNeoForge ModLoaderType = "NeoForge"
	LoaderQuilt    ModLoaderType = "Quilt"
)

// ModLoader describes the loader of an instance.
type ModLoader struct {
	LoaderType ModLoaderType `json:"loaderType"`
	Version    string        `json:"version"`
}

// Instance represents a local game instance.
type Instance struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	ModLoader ModLoader `json:"modLoader"`
	IconSrc   string    `json:"iconSrc,omitempty"`
	Starred   bool      `json:"starred"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the instance contains invalid fields.
func (i *Instance) Validate() error {
	if i.Name == "" {
		return Errorf(EINVALID, "instance name required")
	}
	if i.Version == "" {
		return Errorf(EINVALID, "instance game version required")
	}
	return nil
}

// Description joins the game version with the loader and its version.
func (i *Instance) Description() string {
	loader := i.ModLoader.LoaderType
	if loader == "" || loader == LoaderUnknown {
		return i.Version
	}
	parts := make([]string, 0, 2)
	if i.Version != "" {
		parts = append(parts, i.Version)
	}
	parts = append(parts, strings.TrimSpace(string(loader)+" "+ParseModLoaderVersion(i.ModLoader.Version)))
	return strings.Join(parts, ", ")
}

var (
	forgeVersionRe    = regexp.MustCompile(`([\d.]+)-forge-([\d.]+)`)
	neoForgeVersionRe = regexp.MustCompile(`(neoforge-)?([a-zA-Z0-9.-]+)(-beta)?`)
)

// ParseModLoaderVersion strips the game version and loader prefix from
// installer style loader versions, e.g. "1.16.5-forge-36.2.39" becomes "36.2.39".
func ParseModLoaderVersion(version string) string {
	if m := forgeVersionRe.FindStringSubmatch(version); m != nil {
		return m[2]
	}
	if m := neoForgeVersionRe.FindStringSubmatch(version); m != nil {
		return m[2]
	}
	return version
}

// InstanceService represents a service for managing instances.
type InstanceService interface {
	// CreateInstance creates a new instance.
	CreateInstance(ctx context.Context, instance *Instance) error

	// FindInstanceByID retrieves an instance by ID.
	// Returns ENOTFOUND if instance does not exist.
	FindInstanceByID(ctx context.Context, id string) (*Instance, error)

	// FindInstances retrieves instances matching the filter.
	FindInstances(ctx context.Context, filter InstanceFilter) ([]*Instance, error)

	// DeleteInstance permanently removes an instance.
	// Returns ENOTFOUND if instance does not exist.
	DeleteInstance(ctx context.Context, id string) error
}

// InstanceFilter represents a filter for FindInstances.
type InstanceFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
