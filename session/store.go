package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	bookingTypes "car-rental-booking/types/booking"
	"car-rental-booking/utils"

	"github.com/redis/go-redis/v9"
)

// PendingTTL bounds how long a submitted identity record waits for the
// verification step.
const PendingTTL = 30 * time.Minute

// Store keeps per-user transient verification state in Redis.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// NewRedisClient builds the Redis client from environment configuration.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			db = parsed
		}
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
}

// Ping checks the Redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

func pendingKey(username string) string {
	return "pending:" + username
}

// SavePendingInfo stores the pending customer info for a user. Identity
// numbers are encrypted before they touch Redis.
func (s *Store) SavePendingInfo(ctx context.Context, username string, info bookingTypes.PendingCustomerInfo) error {
	encryptedNID, err := utils.EncryptData(info.NationalID)
	if err != nil {
		return fmt.Errorf("encrypt national id: %w", err)
	}
	encryptedLicense, err := utils.EncryptData(info.LicenseNo)
	if err != nil {
		return fmt.Errorf("encrypt license no: %w", err)
	}
	info.NationalID = encryptedNID
	info.LicenseNo = encryptedLicense

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal pending info: %w", err)
	}

	return s.client.Set(ctx, pendingKey(username), payload, PendingTTL).Err()
}

// GetPendingInfo returns the stored record with identity numbers decrypted.
// found is false when nothing is pending for the user.
func (s *Store) GetPendingInfo(ctx context.Context, username string) (bookingTypes.PendingCustomerInfo, bool, error) {
	var info bookingTypes.PendingCustomerInfo

	payload, err := s.client.Get(ctx, pendingKey(username)).Result()
	if err == redis.Nil {
		return info, false, nil
	}
	if err != nil {
		return info, false, fmt.Errorf("read pending info: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		return info, false, fmt.Errorf("unmarshal pending info: %w", err)
	}

	nid, err := utils.DecryptData(info.NationalID)
	if err != nil {
		return info, false, fmt.Errorf("decrypt national id: %w", err)
	}
	license, err := utils.DecryptData(info.LicenseNo)
	if err != nil {
		return info, false, fmt.Errorf("decrypt license no: %w", err)
	}
	info.NationalID = nid
	info.LicenseNo = license

	return info, true, nil
}

// ClearPendingInfo drops the pending record, if any.
func (s *Store) ClearPendingInfo(ctx context.Context, username string) error {
	return s.client.Del(ctx, pendingKey(username)).Err()
}
