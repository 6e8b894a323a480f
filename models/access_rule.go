package models

// AccessRule maps a work position to the vehicle categories that position may book.
// AllowedCategories is decoded as-is because the backing table stores either a
// single scalar value or a multi-value list; normalization happens in the access
// resolver.
type AccessRule struct {
	Position          string      `bson:"position"`
	AllowedCategories interface{} `bson:"allowed_categories"`
}
