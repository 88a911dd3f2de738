package session_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"car-rental-booking/session"
	bookingTypes "car-rental-booking/types/booking"
	"car-rental-booking/utils"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestKey(t *testing.T) {
	t.Helper()
	t.Setenv("ENCRYPTION_KEY", base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x2a}, 32)))
}

func TestSavePendingInfo(t *testing.T) {
	setTestKey(t)
	client, mock := redismock.NewClientMock()
	store := session.NewStore(client)

	// The encrypted payload carries a random nonce, so match loosely.
	mock.Regexp().ExpectSet("pending:alice", `.*`, session.PendingTTL).SetVal("OK")

	err := store.SavePendingInfo(context.Background(), "alice", bookingTypes.PendingCustomerInfo{
		FirstName:  "Asha",
		LastName:   "Rao",
		NationalID: "9123456780",
		LicenseNo:  "DL-0420110012345",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPendingInfoDecrypts(t *testing.T) {
	setTestKey(t)
	client, mock := redismock.NewClientMock()
	store := session.NewStore(client)

	encryptedNID, err := utils.EncryptData("9123456780")
	require.NoError(t, err)
	encryptedLicense, err := utils.EncryptData("DL-0420110012345")
	require.NoError(t, err)

	payload, err := json.Marshal(bookingTypes.PendingCustomerInfo{
		FirstName:  "Asha",
		LastName:   "Rao",
		NationalID: encryptedNID,
		LicenseNo:  encryptedLicense,
	})
	require.NoError(t, err)

	mock.ExpectGet("pending:alice").SetVal(string(payload))

	info, found, err := store.GetPendingInfo(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Asha", info.FirstName)
	assert.Equal(t, "Rao", info.LastName)
	assert.Equal(t, "9123456780", info.NationalID)
	assert.Equal(t, "DL-0420110012345", info.LicenseNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPendingInfoMissing(t *testing.T) {
	setTestKey(t)
	client, mock := redismock.NewClientMock()
	store := session.NewStore(client)

	mock.ExpectGet("pending:bob").RedisNil()

	_, found, err := store.GetPendingInfo(context.Background(), "bob")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearPendingInfo(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := session.NewStore(client)

	mock.ExpectDel("pending:alice").SetVal(1)

	require.NoError(t, store.ClearPendingInfo(context.Background(), "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
