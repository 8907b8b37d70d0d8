package db

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/app"
	"github.com/zkmint-labs/minting-backend/models"
)

func init() {
	log.SetOutput(io.Discard)
}

const (
	testContractAddress = "0x1C7D4B196Cb0C7B01d743Fbc6116a902379C7238"
	testOwnerAddress    = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
)

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000}},
	}
}

func TestNormalizeAddress(t *testing.T) {
	t.Run("Canonicalizes Casing", func(t *testing.T) {
		lower, err := NormalizeAddress("0x1c7d4b196cb0c7b01d743fbc6116a902379c7238")
		assert.NoError(t, err)
		assert.Equal(t, testContractAddress, lower)
	})

	t.Run("Rejects Invalid Address", func(t *testing.T) {
		_, err := NormalizeAddress("not-an-address")
		assert.Error(t, err)
	})
}

func TestRecordMint(t *testing.T) {
	t.Run("No Error", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().InsertOne(models.CollectionMintRequests, mock.MatchedBy(func(data interface{}) bool {
			request, ok := data.(models.MintRequest)
			return ok &&
				request.Status == models.MintStatusUnsubmitted &&
				request.ContractAddress == testContractAddress &&
				request.OwnerAddress == testOwnerAddress &&
				request.TriedCount == 0
		})).Return(nil)

		store := NewMintStore()
		err := store.RecordMint(models.MintRequest{
			ContractAddress: "0x1c7d4b196cb0c7b01d743fbc6116a902379c7238",
			OwnerAddress:    "0x8ba1f109551bd432803012645ac136ddd64dba72",
			ReferenceId:     "ref-1",
		})

		assert.NoError(t, err)
	})

	t.Run("Duplicate Reference", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().InsertOne(models.CollectionMintRequests, mock.Anything).Return(duplicateKeyError())

		store := NewMintStore()
		err := store.RecordMint(models.MintRequest{
			ContractAddress: testContractAddress,
			OwnerAddress:    testOwnerAddress,
			ReferenceId:     "ref-1",
		})

		assert.ErrorIs(t, err, ErrDuplicateRequest)
	})

	t.Run("Invalid Address", func(t *testing.T) {
		store := NewMintStore()
		err := store.RecordMint(models.MintRequest{
			ContractAddress: "invalid",
			OwnerAddress:    testOwnerAddress,
			ReferenceId:     "ref-1",
		})

		assert.Error(t, err)
	})

	t.Run("Missing Reference Id", func(t *testing.T) {
		store := NewMintStore()
		err := store.RecordMint(models.MintRequest{
			ContractAddress: testContractAddress,
			OwnerAddress:    testOwnerAddress,
		})

		assert.Error(t, err)
	})
}

func TestClaimNextBatch(t *testing.T) {
	t.Run("Claims Until Queue Drained", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		filter := bson.M{"status": models.MintStatusUnsubmitted}
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionMintRequests, filter, mock.Anything, mock.Anything).Return(nil).Twice()
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionMintRequests, filter, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments).Once()

		store := NewMintStore()
		claimed, err := store.ClaimNextBatch(5)

		assert.NoError(t, err)
		assert.Len(t, claimed, 2)
	})

	t.Run("Respects Limit", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindOneAndUpdate(models.CollectionMintRequests, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)

		store := NewMintStore()
		claimed, err := store.ClaimNextBatch(3)

		assert.NoError(t, err)
		assert.Len(t, claimed, 3)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindOneAndUpdate(models.CollectionMintRequests, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("error"))

		store := NewMintStore()
		claimed, err := store.ClaimNextBatch(3)

		assert.Error(t, err)
		assert.Len(t, claimed, 0)
	})
}

func TestMarkSubmitted(t *testing.T) {
	t.Run("No Ids", func(t *testing.T) {
		store := NewMintStore()
		assert.NoError(t, store.MarkSubmitted(nil))
	})

	t.Run("Only Flips Submitting Rows", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		id := primitive.NewObjectID()
		mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.MatchedBy(func(filter interface{}) bool {
			f, ok := filter.(bson.M)
			return ok && f["status"] == models.MintStatusSubmitting
		}), mock.Anything).Return(1, nil)

		store := NewMintStore()
		assert.NoError(t, store.MarkSubmitted([]primitive.ObjectID{id}))
	})
}

func TestMarkForRetry(t *testing.T) {
	t.Run("Excludes Exhausted Budgets", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		id := primitive.NewObjectID()
		mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.MatchedBy(func(filter interface{}) bool {
			f, ok := filter.(bson.M)
			if !ok {
				return false
			}
			triedCount, ok := f["tried_count"].(bson.M)
			return ok && triedCount["$lt"] == int64(3)
		}), mock.MatchedBy(func(update interface{}) bool {
			u, ok := update.(bson.M)
			if !ok {
				return false
			}
			inc, ok := u["$inc"].(bson.M)
			return ok && inc["tried_count"] == 1
		})).Return(1, nil)

		store := NewMintStore()
		assert.NoError(t, store.MarkForRetry([]primitive.ObjectID{id}, 3))
	})

	t.Run("No Ids", func(t *testing.T) {
		store := NewMintStore()
		assert.NoError(t, store.MarkForRetry(nil, 3))
	})
}

func TestResetForRetry(t *testing.T) {
	mockDB := app.NewMockDatabase(t)
	app.DB = mockDB

	id := primitive.NewObjectID()
	mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.MatchedBy(func(filter interface{}) bool {
		f, ok := filter.(bson.M)
		return ok && f["status"] == models.MintStatusSubmitting
	}), mock.MatchedBy(func(update interface{}) bool {
		u, ok := update.(bson.M)
		if !ok {
			return false
		}
		// a reset does not charge the retry budget
		_, hasInc := u["$inc"]
		return !hasInc
	})).Return(1, nil)

	store := NewMintStore()
	assert.NoError(t, store.ResetForRetry([]primitive.ObjectID{id}))
}

func TestMarkConflicting(t *testing.T) {
	t.Run("Without Event Id", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.MatchedBy(func(filter interface{}) bool {
			f, ok := filter.(bson.M)
			if !ok {
				return false
			}
			_, hasGuard := f["$or"]
			return f["contract_address"] == testContractAddress && !hasGuard
		}), mock.Anything).Return(1, nil)

		store := NewMintStore()
		assert.NoError(t, store.MarkConflicting([]string{"ref-1"}, testContractAddress, ""))
	})

	t.Run("With Event Id Guard", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.MatchedBy(func(filter interface{}) bool {
			f, ok := filter.(bson.M)
			if !ok {
				return false
			}
			_, hasGuard := f["$or"]
			return hasGuard
		}), mock.Anything).Return(1, nil)

		store := NewMintStore()
		assert.NoError(t, store.MarkConflicting([]string{"ref-1"}, testContractAddress, "01HZX0000000000000000000EV"))
	})

	t.Run("No Reference Ids", func(t *testing.T) {
		store := NewMintStore()
		assert.NoError(t, store.MarkConflicting(nil, testContractAddress, ""))
	})
}

func TestSyncStatus(t *testing.T) {
	update := models.StatusUpdate{
		ContractAddress: testContractAddress,
		ReferenceId:     "ref-1",
		OwnerAddress:    testOwnerAddress,
		Status:          models.MintStatusSucceeded,
		TokenId:         "42",
		EventId:         "01HZX0000000000000000000EV",
	}

	t.Run("Applies Newer Event", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.MatchedBy(func(filter interface{}) bool {
			f, ok := filter.(bson.M)
			if !ok {
				return false
			}
			_, hasGuard := f["$or"]
			return hasGuard && f["reference_id"] == "ref-1"
		}), mock.Anything).Return(1, nil)

		store := NewMintStore()
		assert.NoError(t, store.SyncStatus(update))
	})

	t.Run("Stale Event Is No-Op", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.Anything, mock.Anything).Return(0, nil)
		// the row exists, so the guard decided the event was stale
		mockDB.EXPECT().FindOne(models.CollectionMintRequests, mock.Anything, mock.Anything).Return(nil)

		store := NewMintStore()
		assert.NoError(t, store.SyncStatus(update))
	})

	t.Run("Unrecorded Row Is Created", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.Anything, mock.Anything).Return(0, nil)
		mockDB.EXPECT().FindOne(models.CollectionMintRequests, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)
		mockDB.EXPECT().InsertOne(models.CollectionMintRequests, mock.MatchedBy(func(data interface{}) bool {
			request, ok := data.(models.MintRequest)
			return ok &&
				request.Status == models.MintStatusSucceeded &&
				request.LastEventId == update.EventId &&
				request.TokenId == "42"
		})).Return(nil)

		store := NewMintStore()
		assert.NoError(t, store.SyncStatus(update))
	})

	t.Run("Insert Race Is No-Op", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.Anything, mock.Anything).Return(0, nil)
		mockDB.EXPECT().FindOne(models.CollectionMintRequests, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)
		mockDB.EXPECT().InsertOne(models.CollectionMintRequests, mock.Anything).Return(duplicateKeyError())

		store := NewMintStore()
		assert.NoError(t, store.SyncStatus(update))
	})

	t.Run("Missing Event Id", func(t *testing.T) {
		invalid := update
		invalid.EventId = ""

		store := NewMintStore()
		assert.Error(t, store.SyncStatus(invalid))
	})

	t.Run("Missing Reference Id", func(t *testing.T) {
		invalid := update
		invalid.ReferenceId = ""

		store := NewMintStore()
		assert.Error(t, store.SyncStatus(invalid))
	})
}

func TestGetByReference(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindOne(models.CollectionMintRequests, mock.Anything, mock.Anything).Return(nil)

		store := NewMintStore()
		_, err := store.GetByReference(testContractAddress, "ref-1")

		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindOne(models.CollectionMintRequests, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)

		store := NewMintStore()
		_, err := store.GetByReference(testContractAddress, "ref-1")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResetStaleSubmitting(t *testing.T) {
	mockDB := app.NewMockDatabase(t)
	app.DB = mockDB

	mockDB.EXPECT().UpdateMany(models.CollectionMintRequests, mock.MatchedBy(func(filter interface{}) bool {
		f, ok := filter.(bson.M)
		if !ok {
			return false
		}
		updatedAt, ok := f["updated_at"].(bson.M)
		if !ok {
			return false
		}
		cutoff, ok := updatedAt["$lt"].(time.Time)
		return ok && f["status"] == models.MintStatusSubmitting && time.Since(cutoff) >= 5*time.Minute
	}), mock.Anything).Return(3, nil)

	store := NewMintStore()
	reset, err := store.ResetStaleSubmitting(5 * time.Minute)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), reset)
}
