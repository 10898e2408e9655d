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

const collectionTenancies = "tenancies"

type TenancyRepository struct {
	col *mongo.Collection
}

func NewTenancyRepository(db *mongo.Database) *TenancyRepository {
	return &TenancyRepository{col: db.Collection(collectionTenancies)}
}

// Create inserts a new tenancy document.
func (r *TenancyRepository) Create(ctx context.Context, t *domain.Tenancy) (*domain.Tenancy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *t
	doc.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByID retrieves a tenancy by ID. When landlordID is non-empty, an
// additional filter by landlord_id is applied.
func (r *TenancyRepository) FindByID(ctx context.Context, id, landlordID string) (*domain.Tenancy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if landlordID != "" {
		filter["landlord_id"] = landlordID
	}

	var t domain.Tenancy
	if err := r.col.FindOne(ctx, filter).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTenancyNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TenancyRepository) FindByLandlord(ctx context.Context, landlordID string, activeOnly bool) ([]*domain.Tenancy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"landlord_id": landlordID}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tenancies []*domain.Tenancy
	if err := cursor.All(ctx, &tenancies); err != nil {
		return nil, err
	}
	return tenancies, nil
}

// SetPaymentDates stores the recorded payment date and the derived next
// due date in one update.
func (r *TenancyRepository) SetPaymentDates(ctx context.Context, id string, lastPayment, nextPayment time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"last_payment_date": lastPayment,
		"next_payment_date": nextPayment,
	}}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrTenancyNotFound
	}
	return nil
}

// DeleteByLandlord removes every tenancy owned by the landlord and returns
// the number removed.
func (r *TenancyRepository) DeleteByLandlord(ctx context.Context, landlordID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteMany(ctx, bson.M{"landlord_id": landlordID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByProperty removes every tenancy attached to the property and
// returns the number removed.
func (r *TenancyRepository) DeleteByProperty(ctx context.Context, propertyID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteMany(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureIndexes creates necessary indexes on the tenancies collection.
func (r *TenancyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "landlord_id", Value: 1}}},
		{Keys: bson.D{{Key: "property_id", Value: 1}}},
		{Keys: bson.D{{Key: "rent_end", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
