package app

import (
	"context"
	"crypto/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zkmint-labs/minting-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error
	InsertOne(collection string, data interface{}) error
	FindOne(collection string, filter interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, result interface{}) error
	FindOneAndUpdate(collection string, filter interface{}, update interface{}, result interface{}) error
	UpdateOne(collection string, filter interface{}, update interface{}) error
	UpdateMany(collection string, filter interface{}, update interface{}) (int64, error)
	UpsertOne(collection string, filter interface{}, update interface{}) error

	XLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	locker   *lock.Client
}

var (
	DB Database
)

func timeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
}

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.Majority()

	ctx, cancel := timeoutContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLockers sets up the locker
func (d *mongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := timeoutContext()
	defer cancel()

	locker := lock.NewClient(d.db.Collection("locks"))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

func randomString(n int) string {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	var bytes = make([]byte, n)
	rand.Read(bytes)
	for i, b := range bytes {
		bytes[i] = alphanum[b%byte(len(alphanum))]
	}
	return string(bytes)
}

// XLock locks a resource for exclusive access
func (d *mongoDatabase) XLock(resourceId string) (string, error) {
	ctx, cancel := timeoutContext()
	defer cancel()

	lockId := randomString(32)
	err := d.locker.XLock(ctx, resourceId, lockId, lock.LockDetails{})
	return lockId, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := timeoutContext()
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

// SetupIndexes sets up the indexes
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	// unique index for mint requests, the insert-time idempotency guard
	log.Debug("[DB] Setting up indexes for mint requests")
	ctx, cancel := timeoutContext()
	defer cancel()
	_, err := d.db.Collection(models.CollectionMintRequests).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "contract_address", Value: 1}, {Key: "reference_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// index for claiming pending mint requests
	ctx, cancel = timeoutContext()
	defer cancel()
	_, err = d.db.Collection(models.CollectionMintRequests).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "updated_at", Value: 1}},
	})
	if err != nil {
		return err
	}

	// unique index for healthchecks
	log.Debug("[DB] Setting up indexes for healthchecks")
	ctx, cancel = timeoutContext()
	defer cancel()
	_, err = d.db.Collection(models.CollectionHealthChecks).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "hostname", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	log.Info("[DB] Indexes setup")

	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := timeoutContext()
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()
	_, err := d.db.Collection(collection).InsertOne(ctx, data)
	return err
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()
	err := d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	return err
}

// method for find multiple values in a collection
func (d *mongoDatabase) FindMany(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for atomically updating a single document and decoding the
// updated document; returns mongo.ErrNoDocuments when nothing matched
func (d *mongoDatabase) FindOneAndUpdate(collection string, filter interface{}, update interface{}, result interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := d.db.Collection(collection).FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
	return err
}

// method for update single value in a collection
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	return err
}

// method for update multiple values in a collection
func (d *mongoDatabase) UpdateMany(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := timeoutContext()
	defer cancel()
	res, err := d.db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// method for upsert single value in a collection
func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	return err
}

// InitDB creates a new database wrapper
func InitDB() {
	DB = &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
	}

	err := DB.Connect()
	if err != nil {
		log.Fatal(err)
	}
	err = DB.SetupIndexes()
	if err != nil {
		log.Fatal(err)
	}
	err = DB.SetupLockers()
	if err != nil {
		log.Fatal(err)
	}
	log.Info("[DB] Database initialized")
}
