package fleet

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resolveAllowedCategories maps the requesting user to the vehicle categories the
// user's position may book. Anonymous callers, blank positions, unmatched rules and
// empty rules all resolve to no categories: deny by default.
func (s *DefaultFleetService) resolveAllowedCategories(ctx context.Context, userID *int64) ([]string, error) {
	if userID == nil {
		return nil, nil
	}

	position, err := s.UserRepo.GetPosition(ctx, *userID)
	if err != nil {
		return nil, err
	}
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, nil
	}

	rule, err := s.AccessRepo.GetByPosition(ctx, position)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}

	return NormalizeCategories(rule.AllowedCategories), nil
}

// NormalizeCategories flattens a stored allowed-categories value into a deduplicated
// list of category codes. The backing table stores either a single scalar or a
// multi-value list, and decoding can yield either form.
func NormalizeCategories(raw interface{}) []string {
	var values []string
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		values = []string{v}
	case []string:
		values = v
	case primitive.A:
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	default:
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	var categories []string
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		categories = append(categories, value)
	}
	return categories
}
