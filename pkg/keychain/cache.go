/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package keychain

import (
	"crypto/sha1"
	"encoding/json"

	"go.etcd.io/bbolt"
)

const (
	CacheBucket = "keychains"
)

// Cache persists fetched keychain entries in a bolt bucket keyed by
// the request payload digest, so repeat parses of the same log work
// without network access.
type Cache struct {
	DB *bbolt.DB
}

func NewCache(path string) (*Cache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(CacheBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{DB: db}, nil
}

func (c *Cache) Close() {
	c.DB.Close()
}

// CacheKey digests the request payload. Two logs sharing the same
// encryption info area resolve to the same cache entry.
func CacheKey(r *Request) ([]byte, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	sum := sha1.Sum(payload)
	return sum[:], nil
}

func (c *Cache) Get(key []byte) ([][]Entry, bool, error) {
	var groups [][]Entry
	found := false
	if err := c.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(CacheBucket))
		if b == nil {
			return nil
		}
		data := b.Get(key)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &groups); err != nil {
			return err
		}
		found = true
		return nil
	}); err != nil {
		return nil, false, err
	}
	return groups, found, nil
}

func (c *Cache) Put(key []byte, groups [][]Entry) error {
	data, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	return c.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(CacheBucket))
		return b.Put(key, data)
	})
}
