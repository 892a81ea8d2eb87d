package services

import (
	"context"
	"strings"

	"github.com/registrydata/appointments-backend/internal/pkg/ctxutil"
)

const (
	defaultItemsPerPage     = 35
	maxItemsPerPageExternal = 50

	// InternalAppPrivilege is the pre-verified privilege that unlocks the
	// internal paging cap and sorting threshold.
	InternalAppPrivilege = "internal-app"
)

func hasInternalAppPrivileges(ctx context.Context) bool {
	return ctxutil.HasPrivilege(ctx, InternalAppPrivilege)
}

// clampItemsPerPage applies the privilege-dependent page size policy:
// nil/zero falls back to the default, negatives are absorbed via absolute
// value, and the result is capped at the caller's maximum.
func clampItemsPerPage(ctx context.Context, itemsPerPage *int, maxInternal int) int {
	if itemsPerPage == nil || *itemsPerPage == 0 {
		return defaultItemsPerPage
	}
	requested := abs(*itemsPerPage)
	max := maxItemsPerPageExternal
	if hasInternalAppPrivileges(ctx) {
		max = maxInternal
	}
	if requested > max {
		return max
	}
	return requested
}

// clampStartIndex absorbs negative start indexes silently.
func clampStartIndex(startIndex *int) int {
	if startIndex == nil {
		return 0
	}
	return abs(*startIndex)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
