package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/helper"
	"hargeisa_vibes/model"
)

// CatalogResolver resolves booking references against the catalog tables.
// References starting with "deal-" point at deals, anything else is treated
// as a service id.
type CatalogResolver struct{}

func NewCatalogResolver() *CatalogResolver {
	return &CatalogResolver{}
}

func (r *CatalogResolver) Resolve(ctx context.Context, ref string) (string, float64, error) {
	if strings.HasPrefix(ref, constants.DEAL_REFERENCE_PREFIX) {
		rawId := strings.TrimPrefix(ref, constants.DEAL_REFERENCE_PREFIX)
		id, err := strconv.ParseUint(rawId, 10, 64)
		if err != nil {
			return "", 0, fmt.Errorf("malformed deal reference %q", ref)
		}
		var deal model.Deal
		if err := DB.WithContext(ctx).First(&deal, uint(id)).Error; err != nil {
			return "", 0, fmt.Errorf("deal %d: %w", id, err)
		}
		return deal.Title, deal.Price, nil
	}

	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed service reference %q", ref)
	}
	var service model.Service
	if err := DB.WithContext(ctx).First(&service, uint(id)).Error; err != nil {
		return "", 0, fmt.Errorf("service %d: %w", id, err)
	}
	return service.Title, service.Price, nil
}

var _ helper.PriceResolver = (*CatalogResolver)(nil)
