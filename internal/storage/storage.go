// Package storage is the data-access layer for site content. Storage has
// one production implementation backed by MongoDB and one in-memory
// implementation used by tests and local development.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"enersite-backend/internal/models"
	"enersite-backend/internal/validation"
)

// FeaturedProjectsLimit caps ListFeaturedProjects.
const FeaturedProjectsLimit = 4

var (
	ErrNotFound     = errors.New("not found")
	ErrSlugExists   = errors.New("slug already exists")
	ErrDetailsExist = errors.New("project details already exist")
)

// ValidationError reports input that failed schema validation. Nothing is
// written when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+e.Fields[k])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// Storage reads return nil (and no error) when a single-row lookup matches
// nothing. List reads return an empty, never nil, slice.
type Storage interface {
	ListSolutions(ctx context.Context) ([]models.Solution, error)
	GetSolutionBySlug(ctx context.Context, slug string) (*models.Solution, error)
	CreateSolution(ctx context.Context, in models.SolutionInput) (models.Solution, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProjectDetailsByProjectID(ctx context.Context, projectID string) (*models.ProjectDetails, error)
	CreateProjectDetails(ctx context.Context, in models.ProjectDetailsInput) (models.ProjectDetails, error)

	ListTeamMembers(ctx context.Context) ([]models.TeamMember, error)
	CreateTeamMember(ctx context.Context, in models.TeamMemberInput) (models.TeamMember, error)

	ListPartnerTypes(ctx context.Context) ([]models.PartnerType, error)
	CreatePartnerType(ctx context.Context, in models.PartnerTypeInput) (models.PartnerType, error)

	ListFaqs(ctx context.Context, filter FaqFilter) ([]models.Faq, error)
	CreateFaq(ctx context.Context, in models.FaqInput) (models.Faq, error)

	CreateContactSubmission(ctx context.Context, in models.ContactSubmissionInput) (models.ContactSubmission, error)
	ListContactSubmissions(ctx context.Context, limit, offset int64) ([]models.ContactSubmission, int64, error)
	MarkContactSubmissionRead(ctx context.Context, id string) (models.ContactSubmission, error)

	Ping(ctx context.Context) error
}

type FaqFilter struct {
	Category string
}

func check(val *validation.Validator, in interface{}) error {
	if err := val.Struct(in); err != nil {
		if details := val.Details(err); details != nil {
			return &ValidationError{Fields: details}
		}
		return err
	}
	return nil
}

func faqCategory(raw string) string {
	if c := strings.TrimSpace(raw); c != "" {
		return c
	}
	return models.DefaultFaqCategory
}
