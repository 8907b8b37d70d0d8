package mint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkmint-labs/minting-backend/db"
	"github.com/zkmint-labs/minting-backend/models"
)

func TestRecord(t *testing.T) {
	t.Run("No Error", func(t *testing.T) {
		mockStore := db.NewMockMintStore(t)

		request := models.MintRequest{
			ContractAddress: testContractAddress,
			OwnerAddress:    testOwnerAddress,
			ReferenceId:     "ref-1",
		}
		mockStore.EXPECT().RecordMint(request).Return(nil)

		assert.NoError(t, Record(mockStore, request))
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockStore := db.NewMockMintStore(t)

		request := models.MintRequest{
			ContractAddress: testContractAddress,
			OwnerAddress:    testOwnerAddress,
			ReferenceId:     "ref-1",
		}
		mockStore.EXPECT().RecordMint(request).Return(db.ErrDuplicateRequest)

		assert.ErrorIs(t, Record(mockStore, request), db.ErrDuplicateRequest)
	})
}
