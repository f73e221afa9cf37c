// Package form models the site attributes submitted for evaluation and
// derives the natural-language inputs the pipeline builds prompts from.
package form

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProjectForm is the caller-supplied description of one EV charging site.
// Every field is optional; absent values degrade to generic wording.
type ProjectForm struct {
	SiteAddress            string  `json:"siteAddress"`
	UtilityProvider        string  `json:"utilityProvider"`
	NumChargers            int     `json:"numChargers"`
	ChargerType            string  `json:"chargerType"`
	ChargerKW              float64 `json:"chargerKW"`
	NumPorts               int     `json:"numPorts"`
	PortKW                 float64 `json:"portKW"`
	PublicAccess           string  `json:"publicAccess"`
	DisadvantagedCommunity string  `json:"disadvantagedCommunity"`
	UsageType              string  `json:"usageType"`
	VehicleType            string  `json:"vehicleType,omitempty"`
}

// UnmarshalJSON accepts the short-form aliases ("address", "utility") some
// callers still send alongside the canonical field names.
func (f *ProjectForm) UnmarshalJSON(data []byte) error {
	type alias ProjectForm
	aux := struct {
		*alias
		Address string `json:"address"`
		Utility string `json:"utility"`
	}{alias: (*alias)(f)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if f.SiteAddress == "" {
		f.SiteAddress = aux.Address
	}
	if f.UtilityProvider == "" {
		f.UtilityProvider = aux.Utility
	}
	return nil
}

// Describe renders the form as a single deterministic paragraph. Missing
// numeric fields suppress their clause entirely; the output never contains
// placeholder tokens like "undefined".
func (f ProjectForm) Describe() string {
	addr := strings.TrimSpace(f.SiteAddress)
	if addr == "" {
		addr = "an unspecified address"
	}
	utility := strings.TrimSpace(f.UtilityProvider)
	if utility == "" {
		utility = "an unknown utility"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This project is an EV charging site located at %s, served by %s.", addr, utility)

	if f.NumChargers > 0 {
		b.WriteString(" The site plans ")
		fmt.Fprintf(&b, "%d", f.NumChargers)
		if t := strings.TrimSpace(f.ChargerType); t != "" {
			fmt.Fprintf(&b, " %s", t)
		}
		if f.NumChargers == 1 {
			b.WriteString(" charger")
		} else {
			b.WriteString(" chargers")
		}
		if f.ChargerKW > 0 {
			fmt.Fprintf(&b, " rated at %s kW each", trimFloat(f.ChargerKW))
		}
		b.WriteString(".")
	}

	if f.NumPorts > 0 {
		fmt.Fprintf(&b, " It will offer %d charging port", f.NumPorts)
		if f.NumPorts != 1 {
			b.WriteString("s")
		}
		if f.PortKW > 0 {
			fmt.Fprintf(&b, " at %s kW per port", trimFloat(f.PortKW))
		}
		b.WriteString(".")
	}

	if u := strings.TrimSpace(f.UsageType); u != "" {
		fmt.Fprintf(&b, " The intended usage is %s.", u)
	}
	if a := strings.TrimSpace(f.PublicAccess); a != "" {
		fmt.Fprintf(&b, " Site access: %s.", a)
	}
	if v := strings.TrimSpace(f.VehicleType); v != "" {
		fmt.Fprintf(&b, " The site primarily serves %s vehicles.", v)
	}

	switch strings.TrimSpace(f.DisadvantagedCommunity) {
	case "Yes":
		b.WriteString(" The site is located in a designated disadvantaged community.")
	case "No":
		b.WriteString(" The site is not located in a designated disadvantaged community.")
	}

	return b.String()
}

// trimFloat formats a kW value without a trailing ".0" for whole numbers.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
