package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/daybook/events-api/internal/core/domain"
	"github.com/daybook/events-api/internal/core/ports"
)

const eventsCollection = "events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{db: db}
}

type mongoEvent struct {
	ID          int64  `bson:"_id"`
	OwnerID     int64  `bson:"owner_id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
	Date        string `bson:"date"`
	Time        string `bson:"time"`
	Category    string `bson:"category"`
	CreatedAt   int64  `bson:"created_at"`
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	id, err := nextSequence(ctx, r.db, eventsCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoEvent{
		ID:          id,
		OwnerID:     event.OwnerID,
		Name:        event.Name,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Category:    event.Category,
		CreatedAt:   event.CreatedAt.Unix(),
	}

	if _, err := r.db.Collection(eventsCollection).InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *event
	created.ID = id
	return &created, nil
}

// List returns the owner's events ordered by id ascending, which matches
// insertion order since ids are monotonic.
func (r *EventRepository) List(ctx context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	query := bson.M{"owner_id": filter.OwnerID}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.db.Collection(eventsCollection).Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]*domain.Event, 0)
	for cursor.Next(ctx) {
		var me mongoEvent
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		out = append(out, &domain.Event{
			ID:          me.ID,
			OwnerID:     me.OwnerID,
			Name:        me.Name,
			Description: me.Description,
			Date:        me.Date,
			Time:        me.Time,
			Category:    me.Category,
			CreatedAt:   unixToTime(me.CreatedAt),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return out, nil
}
