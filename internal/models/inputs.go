package models

import "strings"

// Input types carry the caller-supplied columns of each entity. Ids and
// timestamps are never part of an input.

type SolutionInput struct {
	Title            string   `json:"title" yaml:"title" validate:"required"`
	Slug             string   `json:"slug" yaml:"slug" validate:"required,slug"`
	ShortDescription string   `json:"shortDescription" yaml:"shortDescription" validate:"required"`
	FullDescription  string   `json:"fullDescription" yaml:"fullDescription" validate:"required"`
	ImageURL         string   `json:"imageUrl" yaml:"imageUrl" validate:"required"`
	Features         []string `json:"features" yaml:"features" validate:"omitempty,dive,required"`
	Benefits         []string `json:"benefits" yaml:"benefits" validate:"omitempty,dive,required"`
	IsActive         *bool    `json:"isActive" yaml:"isActive"`
	Order            int      `json:"order" yaml:"order" validate:"gte=0"`
}

type ProjectInput struct {
	Title         string   `json:"title" yaml:"title" validate:"required"`
	Slug          string   `json:"slug" yaml:"slug" validate:"required,slug"`
	Description   string   `json:"description" yaml:"description" validate:"required"`
	ImageURL      string   `json:"imageUrl" yaml:"imageUrl" validate:"required"`
	Location      *string  `json:"location" yaml:"location"`
	Capacity      *string  `json:"capacity" yaml:"capacity"`
	EnergySavings *string  `json:"energySavings" yaml:"energySavings"`
	Tags          []string `json:"tags" yaml:"tags" validate:"omitempty,dive,required"`
	IsActive      *bool    `json:"isActive" yaml:"isActive"`
	IsFeatured    bool     `json:"isFeatured" yaml:"isFeatured"`
}

type ProjectDetailsInput struct {
	ProjectID        string  `json:"projectId" yaml:"projectId" validate:"required"`
	ClientName       string  `json:"clientName" yaml:"clientName" validate:"required"`
	Solution         string  `json:"solution" yaml:"solution" validate:"required"`
	Overview         *string `json:"overview" yaml:"overview"`
	OurRole          *string `json:"ourRole" yaml:"ourRole"`
	Objectives       *string `json:"objectives" yaml:"objectives"`
	SystemComponents *string `json:"systemComponents" yaml:"systemComponents"`
	Results          *string `json:"results" yaml:"results"`
	Timeline         *string `json:"timeline" yaml:"timeline"`
	VideoID          *string `json:"videoId" yaml:"videoId"`
}

type TeamMemberInput struct {
	Name        string  `json:"name" yaml:"name" validate:"required"`
	Position    string  `json:"position" yaml:"position" validate:"required"`
	Bio         string  `json:"bio" yaml:"bio" validate:"required"`
	ImageURL    string  `json:"imageUrl" yaml:"imageUrl" validate:"required"`
	LinkedinURL *string `json:"linkedinUrl" yaml:"linkedinUrl" validate:"omitempty,url"`
	Order       int     `json:"order" yaml:"order" validate:"gte=0"`
	IsActive    *bool   `json:"isActive" yaml:"isActive"`
}

type PartnerTypeInput struct {
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Slug        string   `json:"slug" yaml:"slug" validate:"required,slug"`
	Description string   `json:"description" yaml:"description" validate:"required"`
	Benefits    []string `json:"benefits" yaml:"benefits" validate:"omitempty,dive,required"`
	IconClass   string   `json:"iconClass" yaml:"iconClass" validate:"required"`
	ColorClass  string   `json:"colorClass" yaml:"colorClass" validate:"required"`
	IsActive    *bool    `json:"isActive" yaml:"isActive"`
	Order       int      `json:"order" yaml:"order" validate:"gte=0"`
}

type FaqInput struct {
	Question string `json:"question" yaml:"question" validate:"required"`
	Answer   string `json:"answer" yaml:"answer" validate:"required"`
	Category string `json:"category" yaml:"category"`
	Order    int    `json:"order" yaml:"order" validate:"gte=0"`
	IsActive *bool  `json:"isActive" yaml:"isActive"`
}

// ContactSubmissionInput is the body of the public contact form.
type ContactSubmissionInput struct {
	FirstName        string  `json:"firstName" validate:"required"`
	LastName         string  `json:"lastName" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            *string `json:"phone"`
	Company          *string `json:"company"`
	SolutionInterest *string `json:"solutionInterest"`
	ProjectDetails   *string `json:"projectDetails"`
}

// Normalize trims the free-text fields so that whitespace-only values fail
// the required checks. Empty optional values become nil.
func (in *ContactSubmissionInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = trimOptional(in.Phone)
	in.Company = trimOptional(in.Company)
	in.SolutionInterest = trimOptional(in.SolutionInterest)
	in.ProjectDetails = trimOptional(in.ProjectDetails)
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// StringList returns v, or an empty list when v is nil.
func StringList(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func BoolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
