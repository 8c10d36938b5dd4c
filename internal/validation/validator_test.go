package validation

import (
	"testing"

	"enersite-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactInputDetailsUseJSONNames(t *testing.T) {
	v := New()
	err := v.Struct(models.ContactSubmissionInput{LastName: "Smith", Email: "bad"})
	require.Error(t, err)

	details := v.Details(err)
	assert.Equal(t, map[string]string{
		"firstName": "required",
		"email":     "email",
	}, details)
}

func TestValidContactInput(t *testing.T) {
	v := New()
	err := v.Struct(models.ContactSubmissionInput{FirstName: "John", LastName: "Smith", Email: "john@x.com"})
	assert.NoError(t, err)
	assert.Nil(t, v.Details(err))
}

func TestSlugRule(t *testing.T) {
	v := New()
	base := models.PartnerTypeInput{
		Title:       "Channel partner",
		Description: "Resells our systems",
		IconClass:   "fa-handshake",
		ColorClass:  "blue",
	}

	for _, slug := range []string{"channel", "channel-partner", "tier-2"} {
		in := base
		in.Slug = slug
		assert.NoError(t, v.Struct(in), slug)
	}

	for _, slug := range []string{"Channel", "channel partner", "-channel", "channel--partner", "channel_partner"} {
		in := base
		in.Slug = slug
		err := v.Struct(in)
		require.Error(t, err, slug)
		assert.Equal(t, "slug", v.Details(err)["slug"], slug)
	}
}

func TestDiveReportsElementPath(t *testing.T) {
	v := New()
	in := models.SolutionInput{
		Title:            "Solar PV",
		Slug:             "solar-pv",
		ShortDescription: "Rooftop arrays",
		FullDescription:  "Rooftop and carport arrays",
		ImageURL:         "/img/solar.jpg",
		Features:         []string{"Monitoring", ""},
	}
	err := v.Struct(in)
	require.Error(t, err)
	assert.Equal(t, "required", v.Details(err)["features[1]"])
}
