package form

import "strings"

// Queries builds the ordered search queries for a form. Empty fields collapse
// cleanly; the set is structurally distinct so no dedup is needed here.
func (f ProjectForm) Queries() []string {
	addr := strings.TrimSpace(f.SiteAddress)
	utility := strings.TrimSpace(f.UtilityProvider)

	queries := []string{
		joinTerms("EV charger funding incentives", addr, utility),
		joinTerms("EV charging site rebates", addr, utility),
		joinTerms("EVSE make-ready incentives", utility, "site:.gov"),
		joinTerms("EV charging tax credits", addr),
		joinTerms("EV infrastructure funding programs", utility),
	}

	if state := ParseState(addr); state != "" {
		queries = append(queries,
			joinTerms(strings.TrimSpace(f.UsageType), "EV charger incentives", StateName(state)))
	}

	return queries
}

// joinTerms joins non-empty terms with single spaces, squashing any internal
// whitespace runs.
func joinTerms(terms ...string) string {
	var parts []string
	for _, t := range terms {
		if fields := strings.Fields(t); len(fields) > 0 {
			parts = append(parts, strings.Join(fields, " "))
		}
	}
	return strings.Join(parts, " ")
}
