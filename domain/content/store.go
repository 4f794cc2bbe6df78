// Package content loads page records from YAML files and caches them for the
// lifetime of the process.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Loader fetches the raw bytes of a named record.
type Loader interface {
	Load(name string) ([]byte, error)
}

// FileLoader reads <Dir>/<name>.yaml.
type FileLoader struct {
	Dir string
}

func (l FileLoader) Load(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.Dir, name+".yaml"))
}

// FSLoader reads <name>.yaml from an fs.FS.
type FSLoader struct {
	FS fs.FS
}

func (l FSLoader) Load(name string) ([]byte, error) {
	return fs.ReadFile(l.FS, name+".yaml")
}

// Store is the content cache. The first successful load of a record wins;
// later calls return the cached value without touching the loader.
type Store struct {
	loader   Loader
	live     bool
	validate *validator.Validate
	log      logger.Logger

	mu    sync.RWMutex
	cache map[string]any
}

type Option func(*Store)

// WithLiveReload makes every accessor call re-read its record.
func WithLiveReload(on bool) Option {
	return func(s *Store) { s.live = on }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

func NewStore(loader Loader, opts ...Option) *Store {
	s := &Store{
		loader:   loader,
		validate: validator.New(),
		log:      logger.Nop(),
		cache:    make(map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the main record. The site cannot render without it, so callers
// treat an error here as fatal.
func (s *Store) Init() error {
	_, err := s.Main()
	return err
}

// Reset drops every cached record.
func (s *Store) Reset() {
	s.mu.Lock()
	s.cache = make(map[string]any)
	s.mu.Unlock()
}

func load[T any](s *Store, name string) (*T, error) {
	if !s.live {
		s.mu.RLock()
		v, ok := s.cache[name]
		s.mu.RUnlock()
		if ok {
			return v.(*T), nil
		}
	}

	// Loading happens outside the lock; two concurrent first calls may both
	// read the file, and the first to store its result wins.
	rec, err := decode[T](s, name)
	if err != nil {
		s.log.Error("Failed to load content", err, logger.Page(name))
		return nil, err
	}

	if s.live {
		return rec, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.cache[name]; ok {
		return v.(*T), nil
	}
	s.cache[name] = rec
	s.log.Debug("Content loaded", logger.Page(name))
	return rec, nil
}

func decode[T any](s *Store, name string) (*T, error) {
	raw, err := s.loader.Load(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewContentLoad(name, fmt.Errorf("content file not found: %w", err))
		}
		return nil, apperrors.NewContentLoad(name, err)
	}

	rec := new(T)
	if err := yaml.Unmarshal(raw, rec); err != nil {
		return nil, apperrors.NewContentLoad(name, fmt.Errorf("malformed yaml: %w", err))
	}
	if err := s.validate.Struct(rec); err != nil {
		return nil, apperrors.NewContentLoad(name, fmt.Errorf("invalid content: %w", err))
	}
	return rec, nil
}

func (s *Store) Main() (*Main, error)         { return load[Main](s, RecordMain) }
func (s *Store) About() (*About, error)       { return load[About](s, RecordAbout) }
func (s *Store) Contact() (*Contact, error)   { return load[Contact](s, RecordContact) }
func (s *Store) Privacy() (*Privacy, error)   { return load[Privacy](s, RecordPrivacy) }
func (s *Store) Clients() (*Clients, error)   { return load[Clients](s, RecordClients) }
func (s *Store) Products() (*Products, error) { return load[Products](s, RecordProducts) }
func (s *Store) Featured() (*Featured, error) { return load[Featured](s, RecordFeatured) }

func (s *Store) Agreement() (*Agreement, error) {
	return load[Agreement](s, RecordAgreement)
}

func (s *Store) SealsStamps() (*CatalogPage, error) {
	return load[CatalogPage](s, RecordSealsStamps)
}

func (s *Store) SelfInkingStamps() (*CatalogPage, error) {
	return load[CatalogPage](s, RecordSelfInkingStamps)
}

func (s *Store) Stationery() (*CatalogPage, error) {
	return load[CatalogPage](s, RecordStationery)
}

func (s *Store) ShopCategories() (*ShopCategories, error) {
	return load[ShopCategories](s, RecordShopCategories)
}
