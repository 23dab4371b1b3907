package mongodb

import (
	"context"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type appointmentTransitionRepository struct {
	collection *mongo.Collection
}

func NewAppointmentTransitionRepository(db *mongo.Database, collection string) domainRepo.AppointmentTransitionRepository {
	return &appointmentTransitionRepository{collection: db.Collection(collection)}
}

func (r *appointmentTransitionRepository) Append(ctx context.Context, transition *entity.AppointmentTransition) error {
	_, err := r.collection.InsertOne(ctx, toTransitionDocument(transition))
	return err
}

func (r *appointmentTransitionRepository) FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) ([]entity.AppointmentTransition, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"appointment_id": appointmentID.String()}, opts)
	if err != nil {
		return nil, err
	}

	var docs []transitionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	transitions := make([]entity.AppointmentTransition, 0, len(docs))
	for i := range docs {
		transitions = append(transitions, *docs[i].toEntity())
	}
	return transitions, nil
}
