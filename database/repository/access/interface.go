// File: database/repository/access/interface.go
package accessRepo

import (
	"context"

	"fleetdesk/config"
	"fleetdesk/models"
)

// AccessRuleRepository reads role access rules mapping work positions to allowed
// vehicle categories.
type AccessRuleRepository interface {
	// GetByPosition returns the rule whose position matches exactly, or nil when
	// no rule exists for that position.
	GetByPosition(ctx context.Context, position string) (*models.AccessRule, error)
}

// Access rules live in a registered custom table addressed by id, resolved lazily
// through the table registry.
type mongoAccessRuleRepo struct {
	tableID int
}

// NewMongoAccessRuleRepo constructs a new MongoDB AccessRuleRepository.
func NewMongoAccessRuleRepo() AccessRuleRepository {
	return &mongoAccessRuleRepo{tableID: config.AppConfig.AccessTableID}
}
