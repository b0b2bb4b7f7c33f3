// Package spotlight provides the unified search aggregator of a Minecraft
// launcher. It combines instant matches over local players, instances and
// routing history with debounced remote resource searches against
// CurseForge and Modrinth, plus templated resource-search shortcuts.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, strutil/).
package spotlight
