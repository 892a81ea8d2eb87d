package services

import "context"

// shouldSortByActiveThenResigned decides whether the listing pays the cost
// of the full sort. Above the caller's threshold the natural storage order
// is returned untouched; a threshold of -1 means always sort.
func shouldSortByActiveThenResigned(ctx context.Context, totalResults, internalThreshold, externalThreshold int) bool {
	threshold := externalThreshold
	if hasInternalAppPrivileges(ctx) {
		threshold = internalThreshold
	}
	return threshold == -1 || totalResults <= threshold
}
