package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeFull(t *testing.T) {
	t.Parallel()

	f := ProjectForm{
		SiteAddress:            "123 Main St, Springfield, IL 62704",
		UtilityProvider:        "Ameren",
		NumChargers:            4,
		ChargerType:            "DCFC",
		ChargerKW:              150,
		NumPorts:               8,
		PortKW:                 150,
		PublicAccess:           "Public",
		DisadvantagedCommunity: "Yes",
		UsageType:              "commercial",
		VehicleType:            "light-duty",
	}

	got := f.Describe()

	assert.Contains(t, got, "123 Main St, Springfield, IL 62704")
	assert.Contains(t, got, "Ameren")
	assert.Contains(t, got, "4 DCFC chargers")
	assert.Contains(t, got, "150 kW each")
	assert.Contains(t, got, "8 charging ports")
	assert.Contains(t, got, "150 kW per port")
	assert.Contains(t, got, "usage is commercial")
	assert.Contains(t, got, "Site access: Public")
	assert.Contains(t, got, "light-duty vehicles")
	assert.Contains(t, got, "is located in a designated disadvantaged community")
}

func TestDescribeEmptyForm(t *testing.T) {
	t.Parallel()

	got := ProjectForm{}.Describe()

	assert.Contains(t, got, "an unspecified address")
	assert.Contains(t, got, "an unknown utility")
	assert.NotContains(t, got, "undefined")
	assert.NotContains(t, got, "null")
	assert.NotContains(t, got, "0 chargers")
	assert.NotContains(t, got, "disadvantaged community")
}

func TestDescribeSuppressesMissingNumerics(t *testing.T) {
	t.Parallel()

	f := ProjectForm{
		SiteAddress: "9 Elm St, Dover, DE 19901",
		NumChargers: 1,
		// ChargerKW absent: the rating clause must be suppressed.
	}
	got := f.Describe()

	assert.Contains(t, got, "1 charger.")
	assert.NotContains(t, got, "kW")
	assert.NotContains(t, got, "port")
}

func TestDescribeDACTernary(t *testing.T) {
	t.Parallel()

	yes := ProjectForm{DisadvantagedCommunity: "Yes"}.Describe()
	no := ProjectForm{DisadvantagedCommunity: "No"}.Describe()
	unknown := ProjectForm{DisadvantagedCommunity: ""}.Describe()

	assert.Contains(t, yes, "is located in a designated disadvantaged community")
	assert.Contains(t, no, "is not located in a designated disadvantaged community")
	assert.NotContains(t, unknown, "disadvantaged")
}

func TestDescribeFractionalKW(t *testing.T) {
	t.Parallel()

	f := ProjectForm{NumChargers: 2, ChargerKW: 19.2}
	assert.Contains(t, f.Describe(), "19.2 kW each")
}

func TestUnmarshalAliases(t *testing.T) {
	t.Parallel()

	var f ProjectForm
	require.NoError(t, json.Unmarshal([]byte(`{"address":"1 A St, Reno, NV 89501","utility":"NV Energy"}`), &f))
	assert.Equal(t, "1 A St, Reno, NV 89501", f.SiteAddress)
	assert.Equal(t, "NV Energy", f.UtilityProvider)

	// Canonical names win over aliases.
	var g ProjectForm
	require.NoError(t, json.Unmarshal([]byte(`{"siteAddress":"real","address":"alias"}`), &g))
	assert.Equal(t, "real", g.SiteAddress)
}

func TestQueries(t *testing.T) {
	t.Parallel()

	f := ProjectForm{
		SiteAddress:     "123 Main St, Springfield, IL 62704",
		UtilityProvider: "Ameren",
		UsageType:       "commercial",
	}
	qs := f.Queries()

	require.Len(t, qs, 6)
	assert.Equal(t, "EV charger funding incentives 123 Main St, Springfield, IL 62704 Ameren", qs[0])
	assert.Equal(t, "EVSE make-ready incentives Ameren site:.gov", qs[2])
	assert.Equal(t, "commercial EV charger incentives Illinois", qs[5])

	// Structurally distinct queries.
	seen := map[string]bool{}
	for _, q := range qs {
		assert.False(t, seen[q], "duplicate query %q", q)
		seen[q] = true
	}
}

func TestQueriesEmptyForm(t *testing.T) {
	t.Parallel()

	qs := ProjectForm{}.Queries()
	require.Len(t, qs, 5)
	for _, q := range qs {
		assert.NotContains(t, q, "  ", "collapsed fields must not leave double spaces")
		assert.NotEqual(t, "", q)
	}
	assert.Equal(t, "EV charging tax credits", qs[3])
}
