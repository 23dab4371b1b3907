package mongodb

import (
	"context"
	"errors"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type patientRepository struct {
	collection *mongo.Collection
}

func NewPatientRepository(db *mongo.Database, collection string) domainRepo.PatientRepository {
	return &patientRepository{collection: db.Collection(collection)}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	_, err := r.collection.InsertOne(ctx, toPatientDocument(patient))
	if mongo.IsDuplicateKeyError(err) {
		return domainRepo.ErrDuplicateEmail
	}
	return err
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	var doc patientDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}
