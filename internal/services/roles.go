package services

import "strings"

var secretarialRoles = map[string]struct{}{
	"secretary":                   {},
	"corporate-secretary":         {},
	"nominee-secretary":           {},
	"corporate-nominee-secretary": {},
}

var directorRoles = map[string]struct{}{
	"director":                   {},
	"corporate-director":         {},
	"nominee-director":           {},
	"corporate-nominee-director": {},
}

var llpRoles = map[string]struct{}{
	"llp-member":                              {},
	"corporate-llp-member":                    {},
	"llp-designated-member":                   {},
	"corporate-llp-designated-member":         {},
	"limited-partner-in-a-limited-partnership": {},
}

func isSecretarialRole(role string) bool {
	_, ok := secretarialRoles[role]
	return ok
}

func isDirectorRole(role string) bool {
	_, ok := directorRoles[role]
	return ok
}

func isLlpRole(role string) bool {
	_, ok := llpRoles[role]
	return ok
}

func isCorporateRole(role string) bool {
	return strings.HasPrefix(role, "corporate")
}

// suppressesPersonalData reports whether listing items for this role must
// drop date of birth and country of residence. Enforced centrally so no
// caller can leak them.
func suppressesPersonalData(role string) bool {
	return isSecretarialRole(role) || isCorporateRole(role)
}

// rolesForRegisterType maps a register type onto the officer roles it
// covers; nil means the register type is unknown.
func rolesForRegisterType(registerType string) []string {
	var source map[string]struct{}
	switch registerType {
	case "directors":
		source = directorRoles
	case "secretaries":
		source = secretarialRoles
	case "llp_members":
		source = llpRoles
	default:
		return nil
	}
	roles := make([]string, 0, len(source))
	for role := range source {
		roles = append(roles, role)
	}
	return roles
}
