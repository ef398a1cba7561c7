package sudoapi

import (
	"context"
	"log/slog"

	"github.com/blogicum/blogicum"
)

func (s *BaseAPI) Category(ctx context.Context, id int) (*blogicum.Category, *StatusError) {
	category, err := s.db.Category(ctx, blogicum.CategoryFilter{ID: &id})
	if err != nil {
		return nil, WrapError(err, "Couldn't find category")
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// CategoryBySlug only resolves published categories for non-admin viewers.
func (s *BaseAPI) CategoryBySlug(ctx context.Context, slug string, lookingUser *blogicum.UserBrief) (*blogicum.Category, *StatusError) {
	filter := blogicum.CategoryFilter{Slug: &slug}
	if !lookingUser.IsAdmin() {
		published := true
		filter.Published = &published
	}
	category, err := s.db.Category(ctx, filter)
	if err != nil {
		return nil, WrapError(err, "Couldn't find category")
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *BaseAPI) Categories(ctx context.Context, filter blogicum.CategoryFilter) ([]*blogicum.Category, *StatusError) {
	categories, err := s.db.Categories(ctx, filter)
	if err != nil {
		return nil, WrapError(err, "Couldn't find categories")
	}
	if categories == nil {
		categories = []*blogicum.Category{}
	}
	return categories, nil
}

func (s *BaseAPI) CreateCategory(ctx context.Context, title, description, slug string, published bool) (int, *StatusError) {
	slug = blogicum.MakeSlug(slug)
	if slug == "" {
		return -1, Statusf(400, "Slug can't be empty!")
	}
	id, err := s.db.CreateCategory(ctx, title, description, slug, published)
	if err != nil {
		return -1, WrapError(err, "Couldn't create category")
	}
	return id, nil
}

func (s *BaseAPI) UpdateCategory(ctx context.Context, id int, upd blogicum.CategoryUpdate) *StatusError {
	if upd.Title != nil && *upd.Title == "" {
		return Statusf(400, "Title can't be empty!")
	}
	if upd.Slug != nil {
		*upd.Slug = blogicum.MakeSlug(*upd.Slug)
		if *upd.Slug == "" {
			return Statusf(400, "Slug can't be empty!")
		}
	}
	if err := s.db.UpdateCategory(ctx, id, upd); err != nil {
		return WrapError(err, "Couldn't update category")
	}
	return nil
}

// DeleteCategory orphans the category's posts instead of removing them:
// their category reference just becomes null.
func (s *BaseAPI) DeleteCategory(ctx context.Context, category *blogicum.Category) *StatusError {
	if err := s.db.DeleteCategory(ctx, category.ID); err != nil {
		return WrapError(err, "Couldn't delete category")
	}
	slog.InfoContext(ctx, "Removed category", slog.String("slug", category.Slug))
	return nil
}

func (s *BaseAPI) Location(ctx context.Context, id int) (*blogicum.Location, *StatusError) {
	location, err := s.db.Location(ctx, blogicum.LocationFilter{ID: &id})
	if err != nil {
		return nil, WrapError(err, "Couldn't find location")
	}
	if location == nil {
		return nil, ErrNotFound
	}
	return location, nil
}

func (s *BaseAPI) Locations(ctx context.Context, filter blogicum.LocationFilter) ([]*blogicum.Location, *StatusError) {
	locations, err := s.db.Locations(ctx, filter)
	if err != nil {
		return nil, WrapError(err, "Couldn't find locations")
	}
	if locations == nil {
		locations = []*blogicum.Location{}
	}
	return locations, nil
}

func (s *BaseAPI) CreateLocation(ctx context.Context, name string, published bool) (int, *StatusError) {
	id, err := s.db.CreateLocation(ctx, name, published)
	if err != nil {
		return -1, WrapError(err, "Couldn't create location")
	}
	return id, nil
}

func (s *BaseAPI) UpdateLocation(ctx context.Context, id int, upd blogicum.LocationUpdate) *StatusError {
	if upd.Name != nil && *upd.Name == "" {
		return Statusf(400, "Name can't be empty!")
	}
	if err := s.db.UpdateLocation(ctx, id, upd); err != nil {
		return WrapError(err, "Couldn't update location")
	}
	return nil
}

func (s *BaseAPI) DeleteLocation(ctx context.Context, location *blogicum.Location) *StatusError {
	if err := s.db.DeleteLocation(ctx, location.ID); err != nil {
		return WrapError(err, "Couldn't delete location")
	}
	return nil
}
