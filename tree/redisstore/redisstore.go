/*
Package redisstore provides storage of grown trees on a redis database,
serialized as JSON and keyed by name.
*/
package redisstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/grove-ml/grove/tree"
	treejson "github.com/grove-ml/grove/tree/json"
	redis "gopkg.in/redis.v5"
)

// Store saves, retrieves and deletes grown trees on a redis DB.
type Store struct {
	rc     *redis.Client
	prefix string
}

// New takes a redis client and a key prefix and returns a Store backed
// by the client's redis DB. Every tree name is namespaced under the
// given prefix.
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc: rc, prefix: prefix}
}

// Save takes a name and a grown tree and stores the tree on redis
// under that name, replacing any tree previously saved with it. It
// returns an error if the tree cannot be encoded or stored.
func (s *Store) Save(ctx context.Context, name string, t *tree.Tree) error {
	var buf bytes.Buffer
	if err := treejson.WriteTree(&buf, t); err != nil {
		return fmt.Errorf("saving tree %q: encoding tree: %v", name, err)
	}
	if _, err := s.rc.Set(s.keyFor(name), buf.Bytes(), 0).Result(); err != nil {
		return fmt.Errorf("saving tree %q in redis: %v", name, err)
	}
	return ctx.Err()
}

// Load takes a name and returns the tree stored on redis under that
// name, or nil if no tree is stored under it, or an error if the store
// cannot be queried or the stored data cannot be decoded.
func (s *Store) Load(ctx context.Context, name string) (*tree.Tree, error) {
	data, err := s.rc.Get(s.keyFor(name)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q from redis: %v", name, err)
	}
	t, err := treejson.ReadTree(bytes.NewReader([]byte(data)))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: decoding tree: %v", name, err)
	}
	return t, ctx.Err()
}

// Delete takes a name and removes the tree stored on redis under that
// name, if any. It returns an error if the deletion cannot be
// performed.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.rc.Del(s.keyFor(name)).Result(); err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", name, err)
	}
	return ctx.Err()
}

func (s *Store) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", s.prefix, name)
}
