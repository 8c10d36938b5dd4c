// Package seed loads site content from YAML and writes it through the
// storage layer. Re-running a seed is safe: rows with an existing slug are
// skipped, and team members and FAQs are only seeded into empty collections.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"enersite-backend/internal/models"
	"enersite-backend/internal/storage"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultContent []byte

type File struct {
	Solutions    []models.SolutionInput    `yaml:"solutions"`
	Projects     []ProjectEntry            `yaml:"projects"`
	PartnerTypes []models.PartnerTypeInput `yaml:"partnerTypes"`
	Team         []models.TeamMemberInput  `yaml:"team"`
	Faqs         []models.FaqInput         `yaml:"faqs"`
}

// ProjectEntry is a project plus its optional details. The details'
// projectId is filled in once the project exists.
type ProjectEntry struct {
	models.ProjectInput `yaml:",inline"`
	Details             *models.ProjectDetailsInput `yaml:"details"`
}

type Result struct {
	Created int
	Skipped int
}

// Load reads a seed file. An empty path selects the built-in content.
func Load(path string) (*File, error) {
	raw := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

func Run(ctx context.Context, store storage.Storage, f *File, log *slog.Logger) (Result, error) {
	var res Result

	for _, in := range f.Solutions {
		_, err := store.CreateSolution(ctx, in)
		if err := res.record(log, "solution", in.Slug, err); err != nil {
			return res, err
		}
	}

	for _, entry := range f.Projects {
		project, err := store.CreateProject(ctx, entry.ProjectInput)
		if err := res.record(log, "project", entry.Slug, err); err != nil {
			return res, err
		}
		if err != nil {
			if entry.Details != nil {
				res.Skipped++
			}
			continue
		}
		if entry.Details == nil {
			continue
		}
		details := *entry.Details
		details.ProjectID = project.ID
		_, err = store.CreateProjectDetails(ctx, details)
		if err := res.record(log, "project details", entry.Slug, err); err != nil {
			return res, err
		}
	}

	for _, in := range f.PartnerTypes {
		_, err := store.CreatePartnerType(ctx, in)
		if err := res.record(log, "partner type", in.Slug, err); err != nil {
			return res, err
		}
	}

	if len(f.Team) > 0 {
		existing, err := store.ListTeamMembers(ctx)
		if err != nil {
			return res, fmt.Errorf("seed team: %w", err)
		}
		if len(existing) > 0 {
			log.Info("seed team: skipped, collection not empty", slog.Int("existing", len(existing)))
			res.Skipped += len(f.Team)
		} else {
			for _, in := range f.Team {
				_, err := store.CreateTeamMember(ctx, in)
				if err := res.record(log, "team member", in.Name, err); err != nil {
					return res, err
				}
			}
		}
	}

	if len(f.Faqs) > 0 {
		existing, err := store.ListFaqs(ctx, storage.FaqFilter{})
		if err != nil {
			return res, fmt.Errorf("seed faqs: %w", err)
		}
		if len(existing) > 0 {
			log.Info("seed faqs: skipped, collection not empty", slog.Int("existing", len(existing)))
			res.Skipped += len(f.Faqs)
		} else {
			for _, in := range f.Faqs {
				_, err := store.CreateFaq(ctx, in)
				if err := res.record(log, "faq", in.Question, err); err != nil {
					return res, err
				}
			}
		}
	}

	return res, nil
}

// record counts the outcome of one create. Duplicates are skipped; any
// other error aborts the run.
func (r *Result) record(log *slog.Logger, kind, key string, err error) error {
	switch {
	case err == nil:
		r.Created++
		log.Info("seed "+kind+": created", slog.String("key", key))
		return nil
	case errors.Is(err, storage.ErrSlugExists), errors.Is(err, storage.ErrDetailsExist):
		r.Skipped++
		log.Info("seed "+kind+": exists, skipped", slog.String("key", key))
		return nil
	default:
		return fmt.Errorf("seed %s %q: %w", kind, key, err)
	}
}
