// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/salesboard/salesboard/internal/app/system/clock"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Clock is the fixed-zone time provider every watermark goes through.
	Clock *clock.Provider
}
