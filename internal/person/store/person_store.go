package store

import (
	"context"
	"time"

	"github.com/commhealth/screening-record-service/internal/person/model"
	"github.com/commhealth/screening-record-service/internal/system/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PersonStore handles MongoDB operations for person records.
type PersonStore struct {
	collection *mongo.Collection
}

// NewPersonStore creates a new store instance bound to the given collection.
func NewPersonStore(db *mongo.Database, collectionName string) *PersonStore {
	return &PersonStore{
		collection: db.Collection(collectionName),
	}
}

// EnsureIndexes creates the unique index on id_number. Uniqueness of the
// national ID is enforced here, not in application logic.
func (s *PersonStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindByIDNumber retrieves a person record by its national ID. A missing
// record is not an error; it returns nil.
func (s *PersonStore) FindByIDNumber(ctx context.Context, idNumber string) (*model.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var person model.Person
	err := s.collection.FindOne(ctx, bson.M{"id_number": idNumber}).Decode(&person)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

// FindByDateUpdated retrieves all person records, or only those whose
// date_updated equals the given date when it is non-empty.
func (s *PersonStore) FindByDateUpdated(ctx context.Context, date string) ([]model.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if date != "" {
		filter["date_updated"] = date
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var persons []model.Person
	if err := cursor.All(ctx, &persons); err != nil {
		return nil, err
	}
	return persons, nil
}

// Upsert creates or updates the record for person.IDNumber in a single
// update. Profile fields and date_updated are overwritten; only the flags
// present in the patch are written, via dotted paths, so omitted flags keep
// their stored values (and default false on insert). Returns whether a new
// record was created.
func (s *PersonStore) Upsert(ctx context.Context, person model.Person, items model.ItemsPatch) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"name":         person.Name,
		"birth":        person.Birth,
		"education":    person.Education,
		"phone":        person.Phone,
		"address":      person.Address,
		"date_updated": person.DateUpdated,
	}
	for flag, value := range items.SetFlags() {
		set["items."+flag] = value
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"id_number": person.IDNumber},
	}

	opts := options.Update().SetUpsert(true)
	result, err := s.collection.UpdateOne(ctx, bson.M{"id_number": person.IDNumber}, update, opts)
	if err != nil {
		return false, err
	}

	created := result.UpsertedCount > 0
	if created {
		log.GetLogger().Info("Person record created", log.MaskedID("id_number", person.IDNumber))
	}
	return created, nil
}
