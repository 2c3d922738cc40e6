package service

import (
	"fmt"
	"strings"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
	"github.com/lesterlimjj/tp-sub001/internal/repo"
)

// TagService implements business logic for tags.
// Tags are created implicitly by the person and listing operations; this
// service lists them and manages which ones are active for search.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns tags whose name starts with prefix, ignoring case.
func (s *TagService) List(prefix string) []domain.Tag {
	tags := s.tags.List(strings.ToLower(strings.TrimSpace(prefix)))
	if tags == nil {
		return []domain.Tag{}
	}
	return tags
}

// Usage reports which preferences and listings carry the named tag.
func (s *TagService) Usage(name string) (repo.TagUsage, error) {
	u, err := s.tags.Usage(name)
	if err != nil {
		return repo.TagUsage{}, fmt.Errorf("service.TagService.Usage: %w", err)
	}
	return u, nil
}

// Activate replaces the active tag set with the named tags.
// Blank names are rejected; unknown names leave the active set unchanged.
func (s *TagService) Activate(names ...string) error {
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return fmt.Errorf("%w: tag name is required", domain.ErrValidation)
		}
	}
	for _, n := range names {
		if _, err := s.tags.Get(n); err != nil {
			return fmt.Errorf("service.TagService.Activate: tag %q: %w", n, err)
		}
	}
	s.tags.ClearActive()
	if err := s.tags.SetActive(names...); err != nil {
		return fmt.Errorf("service.TagService.Activate: %w", err)
	}
	return nil
}

// ClearActive deactivates every tag.
func (s *TagService) ClearActive() {
	s.tags.ClearActive()
}

// Active returns the active tags ordered by name.
func (s *TagService) Active() []domain.Tag {
	set := domain.TagSet(s.tags.ActiveTags())
	out := make([]domain.Tag, 0, len(set))
	for _, k := range set.Keys() {
		out = append(out, set[k])
	}
	return out
}
