package servicioRepo

import (
	"context"
	"fmt"
	"time"

	"uniportal/database"
	"uniportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServicioRepo implements ServicioRepository using MongoDB.
type MongoServicioRepo struct {
	catalog  *mongo.Collection
	bookings *mongo.Collection
}

// NewMongoServicioRepo creates a new instance of ServicioRepository using MongoDB.
func NewMongoServicioRepo() ServicioRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoServicioRepo{
		catalog:  db.Collection("servicios"),
		bookings: db.Collection("serviciosUtilizados"),
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetTipos returns the distinct service types present in the catalog.
func (r *MongoServicioRepo) GetTipos() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	values, err := r.catalog.Distinct(ctx, "tipo", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service types: %w", err)
	}

	tipos := make([]string, 0, len(values))
	for _, v := range values {
		if tipo, ok := v.(string); ok {
			tipos = append(tipos, tipo)
		}
	}
	return tipos, nil
}

// GetByTipo returns the reduced projection of all services of the given type.
func (r *MongoServicioRepo) GetByTipo(tipo string) ([]models.ServicioResumen, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "nombre": 1, "tipo": 1})
	cursor, err := r.catalog.Find(ctx, bson.M{"tipo": tipo}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services of type %s: %w", tipo, err)
	}
	defer cursor.Close(ctx)

	var servicios []models.ServicioResumen
	for cursor.Next(ctx) {
		var s models.ServicioResumen
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		servicios = append(servicios, s)
	}
	return servicios, nil
}

// CreateUtilizado inserts a service booking record.
func (r *MongoServicioRepo) CreateUtilizado(su *models.ServicioUtilizado) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.bookings.InsertOne(ctx, su)
	if err != nil {
		return fmt.Errorf("failed to create service booking: %w", err)
	}
	return nil
}
