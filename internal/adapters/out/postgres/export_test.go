package postgres

import "storefront/internal/core/ports"

// TrackedCount reports how many aggregate writes uow has seen since it was
// created or last rolled back.
func TrackedCount(uow ports.UnitOfWork) int {
	return len(uow.(*GormUnitOfWork).trackedAggregates)
}
