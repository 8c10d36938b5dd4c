package storage

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"enersite-backend/internal/models"
	"enersite-backend/internal/validation"
)

var (
	_ Storage = (*MongoStorage)(nil)
	_ Storage = (*MemoryStorage)(nil)
)

// MemoryStorage keeps rows in insertion order and applies the same
// filters, orderings, defaults and uniqueness rules as MongoStorage.
type MemoryStorage struct {
	mu  sync.RWMutex
	val *validation.Validator
	now func() time.Time

	solutions      []models.Solution
	projects       []models.Project
	projectDetails []models.ProjectDetails
	team           []models.TeamMember
	partners       []models.PartnerType
	faqs           []models.Faq
	contacts       []models.ContactSubmission
}

func NewMemoryStorage(val *validation.Validator) *MemoryStorage {
	return &MemoryStorage{
		val: val,
		now: time.Now,
	}
}

// SetClock replaces the time source used for createdAt/updatedAt.
func (m *MemoryStorage) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Solutions

func (m *MemoryStorage) ListSolutions(ctx context.Context) ([]models.Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.Solution, 0, len(m.solutions))
	for _, s := range m.solutions {
		if s.IsActive {
			items = append(items, cloneSolution(s))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Title < items[j].Title
	})
	return items, nil
}

func (m *MemoryStorage) GetSolutionBySlug(ctx context.Context, slug string) (*models.Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.solutions {
		if s.Slug == slug && s.IsActive {
			item := cloneSolution(s)
			return &item, nil
		}
	}
	return nil, nil
}

func (m *MemoryStorage) CreateSolution(ctx context.Context, in models.SolutionInput) (models.Solution, error) {
	if err := check(m.val, in); err != nil {
		return models.Solution{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.solutions {
		if s.Slug == in.Slug {
			return models.Solution{}, ErrSlugExists
		}
	}
	item := buildSolution(in, m.now())
	m.solutions = append(m.solutions, item)
	return cloneSolution(item), nil
}

// Projects

func (m *MemoryStorage) ListProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.newestProjects(func(p models.Project) bool { return p.IsActive }, 0), nil
}

func (m *MemoryStorage) ListFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.newestProjects(func(p models.Project) bool { return p.IsActive && p.IsFeatured }, FeaturedProjectsLimit), nil
}

// newestProjects walks rows newest-inserted first so equal createdAt values
// still come out newest first. limit <= 0 means no limit.
func (m *MemoryStorage) newestProjects(keep func(models.Project) bool, limit int) []models.Project {
	items := make([]models.Project, 0)
	for i := len(m.projects) - 1; i >= 0; i-- {
		if keep(m.projects[i]) {
			items = append(items, cloneProject(m.projects[i]))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (m *MemoryStorage) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.projects {
		if p.Slug == slug && p.IsActive {
			item := cloneProject(p)
			return &item, nil
		}
	}
	return nil, nil
}

func (m *MemoryStorage) CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error) {
	if err := check(m.val, in); err != nil {
		return models.Project{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.projects {
		if p.Slug == in.Slug {
			return models.Project{}, ErrSlugExists
		}
	}
	item := buildProject(in, m.now())
	m.projects = append(m.projects, item)
	return cloneProject(item), nil
}

func (m *MemoryStorage) DeleteProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := slices.IndexFunc(m.projects, func(p models.Project) bool { return p.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	m.projects = slices.Delete(m.projects, idx, idx+1)
	m.projectDetails = slices.DeleteFunc(m.projectDetails, func(d models.ProjectDetails) bool {
		return d.ProjectID == id
	})
	return nil
}

func (m *MemoryStorage) GetProjectDetailsByProjectID(ctx context.Context, projectID string) (*models.ProjectDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, d := range m.projectDetails {
		if d.ProjectID == projectID {
			item := d
			return &item, nil
		}
	}
	return nil, nil
}

func (m *MemoryStorage) CreateProjectDetails(ctx context.Context, in models.ProjectDetailsInput) (models.ProjectDetails, error) {
	if err := check(m.val, in); err != nil {
		return models.ProjectDetails{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.ContainsFunc(m.projects, func(p models.Project) bool { return p.ID == in.ProjectID }) {
		return models.ProjectDetails{}, ErrNotFound
	}
	if slices.ContainsFunc(m.projectDetails, func(d models.ProjectDetails) bool { return d.ProjectID == in.ProjectID }) {
		return models.ProjectDetails{}, ErrDetailsExist
	}
	item := buildProjectDetails(in, m.now())
	m.projectDetails = append(m.projectDetails, item)
	return item, nil
}

// Team members

func (m *MemoryStorage) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.TeamMember, 0, len(m.team))
	for _, t := range m.team {
		if t.IsActive {
			items = append(items, t)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (m *MemoryStorage) CreateTeamMember(ctx context.Context, in models.TeamMemberInput) (models.TeamMember, error) {
	if err := check(m.val, in); err != nil {
		return models.TeamMember{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item := buildTeamMember(in, m.now())
	m.team = append(m.team, item)
	return item, nil
}

// Partner types

func (m *MemoryStorage) ListPartnerTypes(ctx context.Context) ([]models.PartnerType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.PartnerType, 0, len(m.partners))
	for _, p := range m.partners {
		if p.IsActive {
			p.Benefits = slices.Clone(p.Benefits)
			items = append(items, p)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Title < items[j].Title
	})
	return items, nil
}

func (m *MemoryStorage) CreatePartnerType(ctx context.Context, in models.PartnerTypeInput) (models.PartnerType, error) {
	if err := check(m.val, in); err != nil {
		return models.PartnerType{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.partners {
		if p.Slug == in.Slug {
			return models.PartnerType{}, ErrSlugExists
		}
	}
	item := buildPartnerType(in, m.now())
	m.partners = append(m.partners, item)
	out := item
	out.Benefits = slices.Clone(item.Benefits)
	return out, nil
}

// FAQs

func (m *MemoryStorage) ListFaqs(ctx context.Context, filter FaqFilter) ([]models.Faq, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.Faq, 0, len(m.faqs))
	for _, f := range m.faqs {
		if !f.IsActive {
			continue
		}
		if filter.Category != "" && f.Category != filter.Category {
			continue
		}
		items = append(items, f)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Question < items[j].Question
	})
	return items, nil
}

func (m *MemoryStorage) CreateFaq(ctx context.Context, in models.FaqInput) (models.Faq, error) {
	if err := check(m.val, in); err != nil {
		return models.Faq{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item := buildFaq(in, m.now())
	m.faqs = append(m.faqs, item)
	return item, nil
}

// Contact submissions

func (m *MemoryStorage) CreateContactSubmission(ctx context.Context, in models.ContactSubmissionInput) (models.ContactSubmission, error) {
	in.Normalize()
	if err := check(m.val, in); err != nil {
		return models.ContactSubmission{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item := buildContactSubmission(in, m.now())
	m.contacts = append(m.contacts, item)
	return item, nil
}

func (m *MemoryStorage) ListContactSubmissions(ctx context.Context, limit, offset int64) ([]models.ContactSubmission, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]models.ContactSubmission, 0, len(m.contacts))
	for i := len(m.contacts) - 1; i >= 0; i-- {
		all = append(all, m.contacts[i])
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	if offset >= total {
		return []models.ContactSubmission{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

func (m *MemoryStorage) MarkContactSubmissionRead(ctx context.Context, id string) (models.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.contacts {
		if m.contacts[i].ID == id {
			m.contacts[i].IsRead = true
			return m.contacts[i], nil
		}
	}
	return models.ContactSubmission{}, ErrNotFound
}

func cloneSolution(s models.Solution) models.Solution {
	s.Features = slices.Clone(s.Features)
	s.Benefits = slices.Clone(s.Benefits)
	return s
}

func cloneProject(p models.Project) models.Project {
	p.Tags = slices.Clone(p.Tags)
	return p
}
