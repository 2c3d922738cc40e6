package repo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

// TagUsage lists the preferences and listings carrying a tag.
type TagUsage struct {
	Tag         domain.Tag
	Active      bool
	Preferences []uuid.UUID
	Listings    []uuid.UUID
}

type tagEntry struct {
	tag         domain.Tag
	active      bool
	preferences map[uuid.UUID]struct{}
	listings    map[uuid.UUID]struct{}
}

func (e *tagEntry) unused() bool {
	return len(e.preferences) == 0 && len(e.listings) == 0
}

// TagRegistry tracks every tag in use, keyed by Tag.Key.
// The first casing registered for a tag is kept as its display name and
// entities that use the tag later are given that casing. A tag is dropped
// once nothing uses it.
//
// A subset of tags can be flagged active; the matcher reads that subset
// through ActiveTags.
type TagRegistry struct {
	entries map[string]*tagEntry
}

func newTagRegistry() *TagRegistry {
	return &TagRegistry{entries: make(map[string]*tagEntry)}
}

// entry returns the entry for t, creating it on first use.
func (r *TagRegistry) entry(t domain.Tag) *tagEntry {
	e, ok := r.entries[t.Key()]
	if !ok {
		e = &tagEntry{
			tag:         t,
			preferences: make(map[uuid.UUID]struct{}),
			listings:    make(map[uuid.UUID]struct{}),
		}
		r.entries[t.Key()] = e
	}
	return e
}

func (r *TagRegistry) prune(key string) {
	if e, ok := r.entries[key]; ok && e.unused() {
		delete(r.entries, key)
	}
}

// usePreference records pref's tags and returns them in registry casing.
func (r *TagRegistry) usePreference(pref domain.PropertyPreference) domain.TagSet {
	out := make(domain.TagSet, len(pref.Tags))
	for _, t := range pref.Tags {
		e := r.entry(t)
		e.preferences[pref.ID] = struct{}{}
		out.Add(e.tag)
	}
	return out
}

func (r *TagRegistry) releasePreference(pref domain.PropertyPreference) {
	for k := range pref.Tags {
		if e, ok := r.entries[k]; ok {
			delete(e.preferences, pref.ID)
			r.prune(k)
		}
	}
}

// useListing records tags as used by listingID and returns them in registry casing.
func (r *TagRegistry) useListing(listingID uuid.UUID, tags domain.TagSet) domain.TagSet {
	out := make(domain.TagSet, len(tags))
	for _, t := range tags {
		e := r.entry(t)
		e.listings[listingID] = struct{}{}
		out.Add(e.tag)
	}
	return out
}

func (r *TagRegistry) releaseListing(listingID uuid.UUID, tags domain.TagSet) {
	for k := range tags {
		if e, ok := r.entries[k]; ok {
			delete(e.listings, listingID)
			r.prune(k)
		}
	}
}

// Get returns the registered tag with the given name, ignoring case.
func (r *TagRegistry) Get(name string) (domain.Tag, error) {
	e, ok := r.entries[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.Tag{}, fmt.Errorf("repo.TagRegistry.Get: %w", domain.ErrNotFound)
	}
	return e.tag, nil
}

// List returns all tags whose key starts with prefix, ordered by key.
// Pass prefix="" to return all tags.
func (r *TagRegistry) List(prefix string) []domain.Tag {
	prefix = strings.ToLower(prefix)
	tags := []domain.Tag{}
	for k, e := range r.entries {
		if strings.HasPrefix(k, prefix) {
			tags = append(tags, e.tag)
		}
	}
	slices.SortFunc(tags, func(a, b domain.Tag) int { return strings.Compare(a.Key(), b.Key()) })
	return tags
}

// Usage reports which entities carry the named tag. ID lists are sorted.
func (r *TagRegistry) Usage(name string) (TagUsage, error) {
	e, ok := r.entries[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return TagUsage{}, fmt.Errorf("repo.TagRegistry.Usage: %w", domain.ErrNotFound)
	}
	u := TagUsage{Tag: e.tag, Active: e.active}
	for id := range e.preferences {
		u.Preferences = append(u.Preferences, id)
	}
	for id := range e.listings {
		u.Listings = append(u.Listings, id)
	}
	cmpID := func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) }
	slices.SortFunc(u.Preferences, cmpID)
	slices.SortFunc(u.Listings, cmpID)
	return u, nil
}

// SetActive flags the named tags active. Either all names are known and
// flagged, or none is and domain.ErrNotFound is returned.
func (r *TagRegistry) SetActive(names ...string) error {
	entries := make([]*tagEntry, 0, len(names))
	for _, n := range names {
		e, ok := r.entries[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return fmt.Errorf("repo.TagRegistry.SetActive: tag %q: %w", n, domain.ErrNotFound)
		}
		entries = append(entries, e)
	}
	for _, e := range entries {
		e.active = true
	}
	return nil
}

// ClearActive unflags every tag.
func (r *TagRegistry) ClearActive() {
	for _, e := range r.entries {
		e.active = false
	}
}

// ActiveTags returns the flagged tags keyed by lower-cased name.
func (r *TagRegistry) ActiveTags() map[string]domain.Tag {
	out := make(map[string]domain.Tag)
	for k, e := range r.entries {
		if e.active {
			out[k] = e.tag
		}
	}
	return out
}
