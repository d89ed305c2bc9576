package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	redis "gopkg.in/redis.v5"

	"github.com/grove-ml/grove/tree"
	treejson "github.com/grove-ml/grove/tree/json"
	"github.com/grove-ml/grove/tree/redisstore"
)

const redisTreePrefix = "grove:trees"

// outputTree writes the given tree to the given output: a redis store
// for redis:// URLs, STDOUT when empty and a file otherwise.
func outputTree(ctx context.Context, output string, t *tree.Tree) error {
	if strings.HasPrefix(output, "redis://") {
		store, name, err := redisTreeStore(output)
		if err != nil {
			return err
		}
		return store.Save(ctx, name, t)
	}
	var f *os.File
	var err error
	if output == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return treejson.WriteTree(f, t)
}

// loadTree reads a tree from the given input: a redis store for
// redis:// URLs and a JSON file otherwise.
func loadTree(ctx context.Context, input string) (*tree.Tree, error) {
	if strings.HasPrefix(input, "redis://") {
		store, name, err := redisTreeStore(input)
		if err != nil {
			return nil, err
		}
		t, err := store.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("no tree %q available on %s", name, input)
		}
		return t, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening tree at %s: %v", input, err)
	}
	defer f.Close()
	t, err := treejson.ReadTree(f)
	if err != nil {
		return nil, fmt.Errorf("reading tree at %s: %v", input, err)
	}
	return t, nil
}

/*
redisTreeStore parses a redis://host:port/name URL and returns a tree
store on the redis DB it points to along with the tree name from the
URL path.
*/
func redisTreeStore(treeURL string) (*redisstore.Store, string, error) {
	u, err := url.Parse(treeURL)
	if err != nil {
		return nil, "", fmt.Errorf("parsing redis tree URL %s: %v", treeURL, err)
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return nil, "", fmt.Errorf("redis tree URL %s has no tree name path", treeURL)
	}
	addr := u.Host
	if !strings.Contains(addr, ":") {
		addr = addr + ":6379"
	}
	rc := redis.NewClient(&redis.Options{Addr: addr})
	return redisstore.New(rc, redisTreePrefix), name, nil
}
