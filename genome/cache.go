package genome

import (
	"github.com/boltdb/bolt"
	"gopkg.in/vmihailenco/msgpack.v2"
)

var genomeBucket = []byte("genomes")

// CacheLoader wraps another loader with an on-disk bolt cache, so a
// batch run fetches each reference genome once. Not-found answers are
// not cached.
type CacheLoader struct {
	db  *bolt.DB
	src Loader
}

// NewCacheLoader opens (or creates) the cache database at path.
func NewCacheLoader(path string, src Loader) (*CacheLoader, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(genomeBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &CacheLoader{db: db, src: src}, nil
}

// Load returns the cached genome, falling back to the wrapped loader
// and caching its answer.
func (c *CacheLoader) Load(id string) (*Genome, error) {
	var raw []byte
	c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(genomeBucket).Get([]byte(id)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if raw != nil {
		g := new(Genome)
		if err := msgpack.Unmarshal(raw, g); err != nil {
			return nil, err
		}
		if err := g.Prepare(); err != nil {
			return nil, err
		}
		return g, nil
	}

	g, err := c.src.Load(id)
	if err != nil {
		return nil, err
	}
	value, err := msgpack.Marshal(g)
	if err != nil {
		return nil, err
	}
	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(genomeBucket).Put([]byte(id), value)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Close closes the cache database.
func (c *CacheLoader) Close() error { return c.db.Close() }
