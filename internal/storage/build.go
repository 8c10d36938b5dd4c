package storage

import (
	"strings"
	"time"

	"enersite-backend/internal/models"

	"github.com/google/uuid"
)

// The build* helpers turn a validated input into the row that gets
// persisted. Both implementations share them so defaults stay identical.

func buildSolution(in models.SolutionInput, now time.Time) models.Solution {
	return models.Solution{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(in.Title),
		Slug:             in.Slug,
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		FullDescription:  strings.TrimSpace(in.FullDescription),
		ImageURL:         strings.TrimSpace(in.ImageURL),
		Features:         models.StringList(in.Features),
		Benefits:         models.StringList(in.Benefits),
		IsActive:         models.BoolOr(in.IsActive, true),
		Order:            in.Order,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func buildProject(in models.ProjectInput, now time.Time) models.Project {
	return models.Project{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(in.Title),
		Slug:          in.Slug,
		Description:   strings.TrimSpace(in.Description),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		Location:      in.Location,
		Capacity:      in.Capacity,
		EnergySavings: in.EnergySavings,
		Tags:          models.StringList(in.Tags),
		IsActive:      models.BoolOr(in.IsActive, true),
		IsFeatured:    in.IsFeatured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func buildProjectDetails(in models.ProjectDetailsInput, now time.Time) models.ProjectDetails {
	return models.ProjectDetails{
		ID:               uuid.NewString(),
		ProjectID:        in.ProjectID,
		ClientName:       strings.TrimSpace(in.ClientName),
		Solution:         strings.TrimSpace(in.Solution),
		Overview:         in.Overview,
		OurRole:          in.OurRole,
		Objectives:       in.Objectives,
		SystemComponents: in.SystemComponents,
		Results:          in.Results,
		Timeline:         in.Timeline,
		VideoID:          in.VideoID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func buildTeamMember(in models.TeamMemberInput, now time.Time) models.TeamMember {
	return models.TeamMember{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Position:    strings.TrimSpace(in.Position),
		Bio:         strings.TrimSpace(in.Bio),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		LinkedinURL: in.LinkedinURL,
		Order:       in.Order,
		IsActive:    models.BoolOr(in.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func buildPartnerType(in models.PartnerTypeInput, now time.Time) models.PartnerType {
	return models.PartnerType{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Slug:        in.Slug,
		Description: strings.TrimSpace(in.Description),
		Benefits:    models.StringList(in.Benefits),
		IconClass:   strings.TrimSpace(in.IconClass),
		ColorClass:  strings.TrimSpace(in.ColorClass),
		IsActive:    models.BoolOr(in.IsActive, true),
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func buildFaq(in models.FaqInput, now time.Time) models.Faq {
	return models.Faq{
		ID:        uuid.NewString(),
		Question:  strings.TrimSpace(in.Question),
		Answer:    strings.TrimSpace(in.Answer),
		Category:  faqCategory(in.Category),
		Order:     in.Order,
		IsActive:  models.BoolOr(in.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func buildContactSubmission(in models.ContactSubmissionInput, now time.Time) models.ContactSubmission {
	return models.ContactSubmission{
		ID:               uuid.NewString(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		Company:          in.Company,
		SolutionInterest: in.SolutionInterest,
		ProjectDetails:   in.ProjectDetails,
		IsRead:           false,
		CreatedAt:        now,
	}
}

// Rows written before array defaults existed may decode with nil slices.

func fixSolution(s *models.Solution) {
	s.Features = models.StringList(s.Features)
	s.Benefits = models.StringList(s.Benefits)
}

func fixProject(p *models.Project) {
	p.Tags = models.StringList(p.Tags)
}

func fixPartnerType(p *models.PartnerType) {
	p.Benefits = models.StringList(p.Benefits)
}
