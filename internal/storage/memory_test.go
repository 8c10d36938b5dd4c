package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"enersite-backend/internal/models"
	"enersite-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *MemoryStorage {
	t.Helper()
	store := NewMemoryStorage(validation.New())
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	store.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})
	return store
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func solutionInput(slug, title string, order int, active bool) models.SolutionInput {
	return models.SolutionInput{
		Title:            title,
		Slug:             slug,
		ShortDescription: "short",
		FullDescription:  "full",
		ImageURL:         "/img/" + slug + ".jpg",
		IsActive:         boolPtr(active),
		Order:            order,
	}
}

func projectInput(slug string, active, featured bool) models.ProjectInput {
	return models.ProjectInput{
		Title:       "Project " + slug,
		Slug:        slug,
		Description: "description",
		ImageURL:    "/img/" + slug + ".jpg",
		IsActive:    boolPtr(active),
		IsFeatured:  featured,
	}
}

func TestListSolutionsActiveAndOrdered(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, in := range []models.SolutionInput{
		solutionInput("wind", "Wind", 2, true),
		solutionInput("solar-pv", "Solar PV", 1, true),
		solutionInput("battery", "Battery Storage", 1, true),
		solutionInput("legacy", "Legacy Boilers", 0, false),
	} {
		_, err := store.CreateSolution(ctx, in)
		require.NoError(t, err)
	}

	items, err := store.ListSolutions(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "battery", items[0].Slug)
	assert.Equal(t, "solar-pv", items[1].Slug)
	assert.Equal(t, "wind", items[2].Slug)
	for _, item := range items {
		assert.True(t, item.IsActive)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	solutions, err := store.ListSolutions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, solutions)
	assert.Empty(t, solutions)

	faqs, err := store.ListFaqs(ctx, FaqFilter{})
	require.NoError(t, err)
	assert.NotNil(t, faqs)
}

func TestCreateSolutionDefaults(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	in := solutionInput("heat-pumps", "Heat Pumps", 0, true)
	in.IsActive = nil
	created, err := store.CreateSolution(ctx, in)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.NotNil(t, created.Features)
	assert.NotNil(t, created.Benefits)
	assert.Empty(t, created.Features)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateSolutionDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.CreateSolution(ctx, solutionInput("solar-pv", "Solar PV", 0, true))
	require.NoError(t, err)
	_, err = store.CreateSolution(ctx, solutionInput("solar-pv", "Solar again", 0, true))
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestGetSolutionBySlug(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.CreateSolution(ctx, solutionInput("solar-pv", "Solar PV", 0, true))
	require.NoError(t, err)
	_, err = store.CreateSolution(ctx, solutionInput("hidden", "Hidden", 0, false))
	require.NoError(t, err)

	got, err := store.GetSolutionBySlug(ctx, "solar-pv")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Solar PV", got.Title)

	missing, err := store.GetSolutionBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	hidden, err := store.GetSolutionBySlug(ctx, "hidden")
	require.NoError(t, err)
	assert.Nil(t, hidden)
}

func TestReturnedRowsDoNotAliasStorage(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	in := solutionInput("solar-pv", "Solar PV", 0, true)
	in.Features = []string{"Monitoring"}
	_, err := store.CreateSolution(ctx, in)
	require.NoError(t, err)

	items, err := store.ListSolutions(ctx)
	require.NoError(t, err)
	items[0].Features[0] = "changed"

	again, err := store.ListSolutions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Monitoring", again[0].Features[0])
}

func TestCreateValidationErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	in := solutionInput("Bad Slug", "", 0, true)
	_, err := store.CreateSolution(ctx, in)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "required", ve.Fields["title"])
	assert.Equal(t, "slug", ve.Fields["slug"])

	items, err := store.ListSolutions(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListProjectsNewestFirstActiveOnly(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, in := range []models.ProjectInput{
		projectInput("first", true, false),
		projectInput("inactive", false, false),
		projectInput("second", true, false),
		projectInput("third", true, true),
	} {
		_, err := store.CreateProject(ctx, in)
		require.NoError(t, err)
	}

	items, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{items[0].Slug, items[1].Slug, items[2].Slug})
	for _, p := range items {
		assert.NotNil(t, p.Tags)
	}
}

func TestListFeaturedProjectsLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for i := 1; i <= 6; i++ {
		_, err := store.CreateProject(ctx, projectInput(fmt.Sprintf("featured-%d", i), true, true))
		require.NoError(t, err)
	}
	_, err := store.CreateProject(ctx, projectInput("featured-hidden", false, true))
	require.NoError(t, err)
	_, err = store.CreateProject(ctx, projectInput("plain", true, false))
	require.NoError(t, err)

	items, err := store.ListFeaturedProjects(ctx)
	require.NoError(t, err)
	require.Len(t, items, FeaturedProjectsLimit)
	assert.Equal(t, "featured-6", items[0].Slug)
	assert.Equal(t, "featured-3", items[3].Slug)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
		assert.True(t, items[i].IsFeatured)
		assert.True(t, items[i].IsActive)
	}
}

func TestProjectDetailsLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	project, err := store.CreateProject(ctx, projectInput("campus-microgrid", true, true))
	require.NoError(t, err)

	details, err := store.GetProjectDetailsByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, details)

	created, err := store.CreateProjectDetails(ctx, models.ProjectDetailsInput{
		ProjectID:  project.ID,
		ClientName: "State University",
		Solution:   "Microgrid",
		Overview:   strPtr("A campus microgrid"),
		VideoID:    strPtr("dQw4w9WgXcQ"),
	})
	require.NoError(t, err)
	assert.Equal(t, project.ID, created.ProjectID)

	_, err = store.CreateProjectDetails(ctx, models.ProjectDetailsInput{
		ProjectID:  project.ID,
		ClientName: "Other",
		Solution:   "Other",
	})
	assert.ErrorIs(t, err, ErrDetailsExist)

	details, err = store.GetProjectDetailsByProjectID(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "State University", details.ClientName)
}

func TestCreateProjectDetailsUnknownProject(t *testing.T) {
	store := newTestStorage(t)
	_, err := store.CreateProjectDetails(context.Background(), models.ProjectDetailsInput{
		ProjectID:  "missing",
		ClientName: "Client",
		Solution:   "Solar",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProjectCascadesDetails(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	project, err := store.CreateProject(ctx, projectInput("retrofit", true, false))
	require.NoError(t, err)
	other, err := store.CreateProject(ctx, projectInput("other", true, false))
	require.NoError(t, err)

	for _, id := range []string{project.ID, other.ID} {
		_, err = store.CreateProjectDetails(ctx, models.ProjectDetailsInput{ProjectID: id, ClientName: "c", Solution: "s"})
		require.NoError(t, err)
	}

	require.NoError(t, store.DeleteProject(ctx, project.ID))

	gone, err := store.GetProjectBySlug(ctx, "retrofit")
	require.NoError(t, err)
	assert.Nil(t, gone)

	details, err := store.GetProjectDetailsByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, details)

	kept, err := store.GetProjectDetailsByProjectID(ctx, other.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	assert.ErrorIs(t, store.DeleteProject(ctx, project.ID), ErrNotFound)
}

func TestListTeamMembersOrdered(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, in := range []models.TeamMemberInput{
		{Name: "Zoe", Position: "CEO", Bio: "b", ImageURL: "/z.jpg", Order: 0},
		{Name: "Adam", Position: "CTO", Bio: "b", ImageURL: "/a.jpg", Order: 1},
		{Name: "Beth", Position: "CFO", Bio: "b", ImageURL: "/b.jpg", Order: 1},
		{Name: "Gone", Position: "Ex", Bio: "b", ImageURL: "/g.jpg", IsActive: boolPtr(false)},
	} {
		_, err := store.CreateTeamMember(ctx, in)
		require.NoError(t, err)
	}

	items, err := store.ListTeamMembers(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Zoe", "Adam", "Beth"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func TestCreateTeamMemberRejectsBadLinkedin(t *testing.T) {
	store := newTestStorage(t)
	_, err := store.CreateTeamMember(context.Background(), models.TeamMemberInput{
		Name: "Zoe", Position: "CEO", Bio: "b", ImageURL: "/z.jpg", LinkedinURL: strPtr("not a url"),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "url", ve.Fields["linkedinUrl"])
}

func TestListPartnerTypesOrdered(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, in := range []models.PartnerTypeInput{
		{Title: "Installers", Slug: "installers", Description: "d", IconClass: "i", ColorClass: "c", Order: 2},
		{Title: "Channel", Slug: "channel", Description: "d", IconClass: "i", ColorClass: "c", Order: 1},
		{Title: "Retired", Slug: "retired", Description: "d", IconClass: "i", ColorClass: "c", IsActive: boolPtr(false)},
	} {
		_, err := store.CreatePartnerType(ctx, in)
		require.NoError(t, err)
	}

	items, err := store.ListPartnerTypes(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "channel", items[0].Slug)
	assert.Equal(t, "installers", items[1].Slug)
	assert.NotNil(t, items[0].Benefits)
}

func TestListFaqsOrderedAndFiltered(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, in := range []models.FaqInput{
		{Question: "Why solar?", Answer: "a", Order: 1},
		{Question: "How much?", Answer: "a", Category: "pricing", Order: 1},
		{Question: "Who are you?", Answer: "a", Order: 0},
		{Question: "Old?", Answer: "a", IsActive: boolPtr(false)},
	} {
		_, err := store.CreateFaq(ctx, in)
		require.NoError(t, err)
	}

	items, err := store.ListFaqs(ctx, FaqFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Who are you?", items[0].Question)
	assert.Equal(t, "How much?", items[1].Question)
	assert.Equal(t, "Why solar?", items[2].Question)
	assert.Equal(t, models.DefaultFaqCategory, items[0].Category)

	pricing, err := store.ListFaqs(ctx, FaqFilter{Category: "pricing"})
	require.NoError(t, err)
	require.Len(t, pricing, 1)
	assert.Equal(t, "How much?", pricing[0].Question)
}

func TestContactSubmissionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	first, err := store.CreateContactSubmission(ctx, models.ContactSubmissionInput{
		FirstName: " John ",
		LastName:  "Smith",
		Email:     "john@x.com",
		Phone:     strPtr("  "),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.IsRead)
	assert.Equal(t, "John", first.FirstName)
	assert.Nil(t, first.Phone)

	second, err := store.CreateContactSubmission(ctx, models.ContactSubmissionInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
		Company:   strPtr("Analytical Engines"),
	})
	require.NoError(t, err)

	items, total, err := store.ListContactSubmissions(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)

	page, total, err := store.ListContactSubmissions(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)

	beyond, _, err := store.ListContactSubmissions(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	read, err := store.MarkContactSubmissionRead(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	_, err = store.MarkContactSubmissionRead(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactSubmissionValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.CreateContactSubmission(ctx, models.ContactSubmissionInput{
		FirstName: "",
		LastName:  "Smith",
		Email:     "bad",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{"firstName": "required", "email": "email"}, ve.Fields)
	assert.Contains(t, ve.Error(), "email:email")

	items, total, err := store.ListContactSubmissions(ctx, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
