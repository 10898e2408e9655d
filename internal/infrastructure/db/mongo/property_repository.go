package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

const collectionProperties = "properties"

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(collectionProperties)}
}

// Create inserts a new property document.
func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *p
	doc.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByID retrieves a property by ID. When landlordID is non-empty, an
// additional filter by landlord_id is applied so callers get an ownership
// check for free.
func (r *PropertyRepository) FindByID(ctx context.Context, id, landlordID string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if landlordID != "" {
		filter["landlord_id"] = landlordID
	}

	var p domain.Property
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) FindByLandlord(ctx context.Context, landlordID string) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"landlord_id": landlordID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []*domain.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ReplaceRenovations stores the full renovation list together with the
// recomputed total in one update so the two cannot drift apart.
func (r *PropertyRepository) ReplaceRenovations(ctx context.Context, id string, renovations []domain.Renovation, total float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"renovations":           renovations,
		"total_renovation_cost": total,
	}}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) DeleteByID(ctx context.Context, id, landlordID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if landlordID != "" {
		filter["landlord_id"] = landlordID
	}

	result, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// DeleteByLandlord removes every property owned by the landlord and
// returns the number removed.
func (r *PropertyRepository) DeleteByLandlord(ctx context.Context, landlordID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteMany(ctx, bson.M{"landlord_id": landlordID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureIndexes creates necessary indexes on the properties collection.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "landlord_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
