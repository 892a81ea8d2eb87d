package types

import "fmt"

// CompanyStatus is the fixed enumeration of statuses accepted on an
// appointment document. Any other value is rejected at the pipeline edge.
type CompanyStatus string

const (
	CompanyStatusActive                CompanyStatus = "active"
	CompanyStatusDissolved             CompanyStatus = "dissolved"
	CompanyStatusLiquidation           CompanyStatus = "liquidation"
	CompanyStatusReceivership          CompanyStatus = "receivership"
	CompanyStatusConvertedClosed       CompanyStatus = "converted-closed"
	CompanyStatusOpen                  CompanyStatus = "open"
	CompanyStatusClosed                CompanyStatus = "closed"
	CompanyStatusInsolvencyProceedings CompanyStatus = "insolvency-proceedings"
	CompanyStatusVoluntaryArrangement  CompanyStatus = "voluntary-arrangement"
	CompanyStatusAdministration        CompanyStatus = "administration"
	CompanyStatusRegistered            CompanyStatus = "registered"
	CompanyStatusRemoved               CompanyStatus = "removed"
)

var acceptedCompanyStatuses = map[CompanyStatus]struct{}{
	CompanyStatusActive:                {},
	CompanyStatusDissolved:             {},
	CompanyStatusLiquidation:           {},
	CompanyStatusReceivership:          {},
	CompanyStatusConvertedClosed:       {},
	CompanyStatusOpen:                  {},
	CompanyStatusClosed:                {},
	CompanyStatusInsolvencyProceedings: {},
	CompanyStatusVoluntaryArrangement:  {},
	CompanyStatusAdministration:        {},
	CompanyStatusRegistered:            {},
	CompanyStatusRemoved:               {},
}

func ParseCompanyStatus(value string) (CompanyStatus, error) {
	status := CompanyStatus(value)
	if _, ok := acceptedCompanyStatuses[status]; !ok {
		return "", fmt.Errorf("invalid company status %q", value)
	}
	return status, nil
}

func (s CompanyStatus) String() string { return string(s) }
