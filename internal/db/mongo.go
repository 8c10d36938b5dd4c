package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Solutions          *mongo.Collection
	Projects           *mongo.Collection
	ProjectDetails     *mongo.Collection
	TeamMembers        *mongo.Collection
	PartnerTypes       *mongo.Collection
	Faqs               *mongo.Collection
	ContactSubmissions *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, NewCollections(client.Database(dbName)), nil
}

func NewCollections(db *mongo.Database) *Collections {
	return &Collections{
		Solutions:          db.Collection("solutions"),
		Projects:           db.Collection("projects"),
		ProjectDetails:     db.Collection("project_details"),
		TeamMembers:        db.Collection("team_members"),
		PartnerTypes:       db.Collection("partner_types"),
		Faqs:               db.Collection("faqs"),
		ContactSubmissions: db.Collection("contact_submissions"),
	}
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	uniqueSlug := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	activeOrder := func(secondary string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "sort_order", Value: 1}, {Key: secondary, Value: 1}},
		}
	}

	plan := []struct {
		col     *mongo.Collection
		indexes []mongo.IndexModel
	}{
		{cols.Solutions, []mongo.IndexModel{uniqueSlug, activeOrder("title")}},
		{cols.Projects, []mongo.IndexModel{
			uniqueSlug,
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "is_featured", Value: 1}, {Key: "created_at", Value: -1}}},
		}},
		{cols.ProjectDetails, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "project_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		}},
		{cols.TeamMembers, []mongo.IndexModel{activeOrder("name")}},
		{cols.PartnerTypes, []mongo.IndexModel{uniqueSlug, activeOrder("title")}},
		{cols.Faqs, []mongo.IndexModel{activeOrder("question")}},
		{cols.ContactSubmissions, []mongo.IndexModel{
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		}},
	}

	for _, step := range plan {
		if _, err := step.col.Indexes().CreateMany(indexTimeout, step.indexes); err != nil {
			return err
		}
	}
	return nil
}
