package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"enersite-backend/internal/db"
	"enersite-backend/internal/models"
	"enersite-backend/internal/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStorage struct {
	cols     *db.Collections
	val      *validation.Validator
	location *time.Location
}

func NewMongoStorage(cols *db.Collections, val *validation.Validator, location *time.Location) *MongoStorage {
	if location == nil {
		location = time.UTC
	}
	return &MongoStorage{
		cols:     cols,
		val:      val,
		location: location,
	}
}

// Mongo keeps millisecond precision; truncating up front keeps the returned
// row identical to what a later read decodes.
func (s *MongoStorage) now() time.Time {
	return time.Now().In(s.location).Truncate(time.Millisecond)
}

func (s *MongoStorage) Ping(ctx context.Context) error {
	return s.cols.Solutions.Database().Client().Ping(ctx, nil)
}

// Solutions

func (s *MongoStorage) ListSolutions(ctx context.Context) ([]models.Solution, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "title", Value: 1},
	})
	items, err := findAll[models.Solution](ctx, s.cols.Solutions, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	for i := range items {
		fixSolution(&items[i])
	}
	return items, nil
}

func (s *MongoStorage) GetSolutionBySlug(ctx context.Context, slug string) (*models.Solution, error) {
	item, err := findOne[models.Solution](ctx, s.cols.Solutions, bson.M{"slug": slug, "is_active": true})
	if err != nil || item == nil {
		return nil, err
	}
	fixSolution(item)
	return item, nil
}

func (s *MongoStorage) CreateSolution(ctx context.Context, in models.SolutionInput) (models.Solution, error) {
	if err := check(s.val, in); err != nil {
		return models.Solution{}, err
	}
	item := buildSolution(in, s.now())
	if err := insert(ctx, s.cols.Solutions, item); err != nil {
		return models.Solution{}, err
	}
	return item, nil
}

// Projects

func (s *MongoStorage) ListProjects(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	items, err := findAll[models.Project](ctx, s.cols.Projects, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	for i := range items {
		fixProject(&items[i])
	}
	return items, nil
}

func (s *MongoStorage) ListFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(FeaturedProjectsLimit)
	query := bson.M{"is_active": true, "is_featured": true}
	items, err := findAll[models.Project](ctx, s.cols.Projects, query, opts)
	if err != nil {
		return nil, err
	}
	for i := range items {
		fixProject(&items[i])
	}
	return items, nil
}

func (s *MongoStorage) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	item, err := findOne[models.Project](ctx, s.cols.Projects, bson.M{"slug": slug, "is_active": true})
	if err != nil || item == nil {
		return nil, err
	}
	fixProject(item)
	return item, nil
}

func (s *MongoStorage) CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error) {
	if err := check(s.val, in); err != nil {
		return models.Project{}, err
	}
	item := buildProject(in, s.now())
	if err := insert(ctx, s.cols.Projects, item); err != nil {
		return models.Project{}, err
	}
	return item, nil
}

// DeleteProject removes the project and its details row. Details are swept
// even when the project is already gone so a retried delete clears rows
// left by a details insert that raced the first attempt.
func (s *MongoStorage) DeleteProject(ctx context.Context, id string) error {
	res, err := s.cols.Projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if _, err := s.cols.ProjectDetails.DeleteMany(ctx, bson.M{"project_id": id}); err != nil {
		return fmt.Errorf("cascade project details: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) GetProjectDetailsByProjectID(ctx context.Context, projectID string) (*models.ProjectDetails, error) {
	return findOne[models.ProjectDetails](ctx, s.cols.ProjectDetails, bson.M{"project_id": projectID})
}

func (s *MongoStorage) CreateProjectDetails(ctx context.Context, in models.ProjectDetailsInput) (models.ProjectDetails, error) {
	if err := check(s.val, in); err != nil {
		return models.ProjectDetails{}, err
	}

	count, err := s.cols.Projects.CountDocuments(ctx, bson.M{"_id": in.ProjectID})
	if err != nil {
		return models.ProjectDetails{}, err
	}
	if count == 0 {
		return models.ProjectDetails{}, ErrNotFound
	}

	item := buildProjectDetails(in, s.now())
	if _, err := s.cols.ProjectDetails.InsertOne(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ProjectDetails{}, ErrDetailsExist
		}
		return models.ProjectDetails{}, err
	}

	// A delete between the count and the insert leaves an orphan; undo it.
	count, err = s.cols.Projects.CountDocuments(ctx, bson.M{"_id": in.ProjectID})
	if err != nil {
		return models.ProjectDetails{}, err
	}
	if count == 0 {
		if _, err := s.cols.ProjectDetails.DeleteOne(ctx, bson.M{"_id": item.ID}); err != nil {
			return models.ProjectDetails{}, fmt.Errorf("remove orphaned details: %w", err)
		}
		return models.ProjectDetails{}, ErrNotFound
	}
	return item, nil
}

// Team members

func (s *MongoStorage) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "name", Value: 1},
	})
	return findAll[models.TeamMember](ctx, s.cols.TeamMembers, bson.M{"is_active": true}, opts)
}

func (s *MongoStorage) CreateTeamMember(ctx context.Context, in models.TeamMemberInput) (models.TeamMember, error) {
	if err := check(s.val, in); err != nil {
		return models.TeamMember{}, err
	}
	item := buildTeamMember(in, s.now())
	if err := insert(ctx, s.cols.TeamMembers, item); err != nil {
		return models.TeamMember{}, err
	}
	return item, nil
}

// Partner types

func (s *MongoStorage) ListPartnerTypes(ctx context.Context) ([]models.PartnerType, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "title", Value: 1},
	})
	items, err := findAll[models.PartnerType](ctx, s.cols.PartnerTypes, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	for i := range items {
		fixPartnerType(&items[i])
	}
	return items, nil
}

func (s *MongoStorage) CreatePartnerType(ctx context.Context, in models.PartnerTypeInput) (models.PartnerType, error) {
	if err := check(s.val, in); err != nil {
		return models.PartnerType{}, err
	}
	item := buildPartnerType(in, s.now())
	if err := insert(ctx, s.cols.PartnerTypes, item); err != nil {
		return models.PartnerType{}, err
	}
	return item, nil
}

// FAQs

func (s *MongoStorage) ListFaqs(ctx context.Context, filter FaqFilter) ([]models.Faq, error) {
	query := bson.M{"is_active": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "question", Value: 1},
	})
	return findAll[models.Faq](ctx, s.cols.Faqs, query, opts)
}

func (s *MongoStorage) CreateFaq(ctx context.Context, in models.FaqInput) (models.Faq, error) {
	if err := check(s.val, in); err != nil {
		return models.Faq{}, err
	}
	item := buildFaq(in, s.now())
	if err := insert(ctx, s.cols.Faqs, item); err != nil {
		return models.Faq{}, err
	}
	return item, nil
}

// Contact submissions

func (s *MongoStorage) CreateContactSubmission(ctx context.Context, in models.ContactSubmissionInput) (models.ContactSubmission, error) {
	in.Normalize()
	if err := check(s.val, in); err != nil {
		return models.ContactSubmission{}, err
	}
	item := buildContactSubmission(in, s.now())
	if err := insert(ctx, s.cols.ContactSubmissions, item); err != nil {
		return models.ContactSubmission{}, err
	}
	return item, nil
}

func (s *MongoStorage) ListContactSubmissions(ctx context.Context, limit, offset int64) ([]models.ContactSubmission, int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	items, err := findAll[models.ContactSubmission](ctx, s.cols.ContactSubmissions, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.cols.ContactSubmissions.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *MongoStorage) MarkContactSubmissionRead(ctx context.Context, id string) (models.ContactSubmission, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"is_read": true}}

	var updated models.ContactSubmission
	if err := s.cols.ContactSubmissions.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ContactSubmission{}, ErrNotFound
		}
		return models.ContactSubmission{}, err
	}
	return updated, nil
}

func insert(ctx context.Context, col *mongo.Collection, doc interface{}) error {
	if _, err := col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugExists
		}
		return err
	}
	return nil
}

func findAll[T any](ctx context.Context, col *mongo.Collection, query bson.M, opts *options.FindOptions) ([]T, error) {
	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func findOne[T any](ctx context.Context, col *mongo.Collection, query bson.M) (*T, error) {
	var item T
	if err := col.FindOne(ctx, query).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
