package models

import "time"

const DefaultFaqCategory = "general"

type Solution struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	Title            string    `bson:"title" json:"title"`
	Slug             string    `bson:"slug" json:"slug"`
	ShortDescription string    `bson:"short_description" json:"shortDescription"`
	FullDescription  string    `bson:"full_description" json:"fullDescription"`
	ImageURL         string    `bson:"image_url" json:"imageUrl"`
	Features         []string  `bson:"features" json:"features"`
	Benefits         []string  `bson:"benefits" json:"benefits"`
	IsActive         bool      `bson:"is_active" json:"isActive"`
	Order            int       `bson:"sort_order" json:"order"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

type Project struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Slug          string    `bson:"slug" json:"slug"`
	Description   string    `bson:"description" json:"description"`
	ImageURL      string    `bson:"image_url" json:"imageUrl"`
	Location      *string   `bson:"location" json:"location"`
	Capacity      *string   `bson:"capacity" json:"capacity"`
	EnergySavings *string   `bson:"energy_savings" json:"energySavings"`
	Tags          []string  `bson:"tags" json:"tags"`
	IsActive      bool      `bson:"is_active" json:"isActive"`
	IsFeatured    bool      `bson:"is_featured" json:"isFeatured"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProjectDetails holds the long-form case study for a project. At most one
// row exists per project and it is removed together with the project.
type ProjectDetails struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	ProjectID        string    `bson:"project_id" json:"projectId"`
	ClientName       string    `bson:"client_name" json:"clientName"`
	Solution         string    `bson:"solution" json:"solution"`
	Overview         *string   `bson:"overview" json:"overview"`
	OurRole          *string   `bson:"our_role" json:"ourRole"`
	Objectives       *string   `bson:"objectives" json:"objectives"`
	SystemComponents *string   `bson:"system_components" json:"systemComponents"`
	Results          *string   `bson:"results" json:"results"`
	Timeline         *string   `bson:"timeline" json:"timeline"`
	VideoID          *string   `bson:"video_id" json:"videoId"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProjectWithDetails is the public shape of GET /projects/{slug}.
type ProjectWithDetails struct {
	Project
	Details *ProjectDetails `json:"details,omitempty"`
}

type TeamMember struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Position    string    `bson:"position" json:"position"`
	Bio         string    `bson:"bio" json:"bio"`
	ImageURL    string    `bson:"image_url" json:"imageUrl"`
	LinkedinURL *string   `bson:"linkedin_url" json:"linkedinUrl"`
	Order       int       `bson:"sort_order" json:"order"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

type PartnerType struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Description string    `bson:"description" json:"description"`
	Benefits    []string  `bson:"benefits" json:"benefits"`
	IconClass   string    `bson:"icon_class" json:"iconClass"`
	ColorClass  string    `bson:"color_class" json:"colorClass"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	Order       int       `bson:"sort_order" json:"order"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

type Faq struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Question  string    `bson:"question" json:"question"`
	Answer    string    `bson:"answer" json:"answer"`
	Category  string    `bson:"category" json:"category"`
	Order     int       `bson:"sort_order" json:"order"`
	IsActive  bool      `bson:"is_active" json:"isActive"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ContactSubmission is append-only from the public surface; only the read
// flag changes afterwards.
type ContactSubmission struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	FirstName        string    `bson:"first_name" json:"firstName"`
	LastName         string    `bson:"last_name" json:"lastName"`
	Email            string    `bson:"email" json:"email"`
	Phone            *string   `bson:"phone" json:"phone"`
	Company          *string   `bson:"company" json:"company"`
	SolutionInterest *string   `bson:"solution_interest" json:"solutionInterest"`
	ProjectDetails   *string   `bson:"project_details" json:"projectDetails"`
	IsRead           bool      `bson:"is_read" json:"isRead"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}
