package services

import (
	"fmt"

	"github.com/registrydata/appointments-backend/internal/apperr"
)

const filterTokenActive = "active"

// Filter is the resolved show-active-only filter: when enabled, the listing
// query excludes appointments at companies in the excluded status set.
type Filter struct {
	Enabled         bool
	ExcludeStatuses []string
}

// The two call sites deliberately exclude different status sets. This looks
// like an inconsistency rather than intent; preserved literally pending
// product clarification, do not unify.
var (
	filterExclusionsListing    = []string{"dissolved", "converted-closed", "closed"}
	filterExclusionsWithCounts = []string{"dissolved", "converted-closed", "removed"}
)

// FilterPolicy selects the exclusion set for a call site.
type FilterPolicy int

const (
	FilterPolicyListing FilterPolicy = iota
	FilterPolicyListingWithCounts
)

func (p FilterPolicy) exclusions() []string {
	if p == FilterPolicyListingWithCounts {
		return filterExclusionsWithCounts
	}
	return filterExclusionsListing
}

// resolveFilter turns a raw filter token into a Filter. A blank token
// disables filtering; "active" enables it; anything else is a client error.
func resolveFilter(token, officerID string, policy FilterPolicy) (Filter, error) {
	if isBlank(token) {
		return Filter{}, nil
	}
	if token == filterTokenActive {
		return Filter{Enabled: true, ExcludeStatuses: policy.exclusions()}, nil
	}
	return Filter{}, apperr.BadRequest("services.resolveFilter",
		fmt.Sprintf("Invalid filter parameter supplied: %s, officer ID: %s", token, officerID))
}
