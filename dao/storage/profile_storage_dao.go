package storage

import (
	"errors"
	"fmt"
	"log"

	"cardapio-server/db"
)

// PROFILE_ITEM_KEY_FORMAT namespaces a local-storage key by visitor profile id.
const PROFILE_ITEM_KEY_FORMAT = "profile_v1:%s:%s"

// ProfileStorageDAO exposes a browser-like local storage per visitor profile over a KV client.
type ProfileStorageDAO struct {
	client db.KVClient
}

// NewProfileStorageDAO initializes a ProfileStorageDAO with the KV client.
func NewProfileStorageDAO(client db.KVClient) *ProfileStorageDAO {
	return &ProfileStorageDAO{client: client}
}

func itemKey(profileID, key string) string {
	return fmt.Sprintf(PROFILE_ITEM_KEY_FORMAT, profileID, key)
}

// GetItem returns the stored value and whether it exists.
func (dao *ProfileStorageDAO) GetItem(profileID, key string) (string, bool, error) {
	value, err := dao.client.Get(itemKey(profileID, key))
	if errors.Is(err, db.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("[ProfileStorageDAO] failed to get %s for profile %s: %w", key, profileID, err)
	}
	return value, true, nil
}

// SetItem overwrites the value stored under key.
func (dao *ProfileStorageDAO) SetItem(profileID, key, value string) error {
	if err := dao.client.Set(itemKey(profileID, key), value); err != nil {
		return fmt.Errorf("[ProfileStorageDAO] failed to set %s for profile %s: %w", key, profileID, err)
	}
	return nil
}

// RemoveItem deletes the key; missing keys are not an error.
func (dao *ProfileStorageDAO) RemoveItem(profileID, key string) error {
	if err := dao.client.Del(itemKey(profileID, key)); err != nil {
		return fmt.Errorf("[ProfileStorageDAO] failed to remove %s for profile %s: %w", key, profileID, err)
	}
	log.Printf("[ProfileStorageDAO] Removed %s for profile %s", key, profileID)
	return nil
}
