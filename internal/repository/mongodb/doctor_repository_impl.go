package mongodb

import (
	"context"
	"errors"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type doctorRepository struct {
	collection *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database, collection string) domainRepo.DoctorRepository {
	return &doctorRepository{collection: db.Collection(collection)}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	_, err := r.collection.InsertOne(ctx, toDoctorDocument(doctor))
	if mongo.IsDuplicateKeyError(err) {
		return domainRepo.ErrDuplicateEmail
	}
	return err
}

func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []doctorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	doctors := make([]entity.Doctor, 0, len(docs))
	for i := range docs {
		doctors = append(doctors, *docs[i].toEntity())
	}
	return doctors, nil
}

func (r *doctorRepository) findOne(ctx context.Context, filter bson.M) (*entity.Doctor, error) {
	var doc doctorDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}
