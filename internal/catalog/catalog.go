// Package catalog provides the item collections the dropdown browses: a
// synthetic demo dataset and TOML catalog files.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"advselect/internal/domain"
	"advselect/internal/engine"
	"advselect/internal/eventbus"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// DemoGroups are the groups of the synthetic dataset, in rotation order
var DemoGroups = []string{
	"Frontend",
	"Backend",
	"DevOps",
	"Database",
	"Developer Tools",
	"Product Management",
	"Security",
	"Data Analytics",
}

// Synthetic builds the demo dataset of n items. Item i (1-based) belongs to
// DemoGroups[i % len(DemoGroups)].
func Synthetic(n int) []domain.Item {
	items := make([]domain.Item, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		group := DemoGroups[i%len(DemoGroups)]
		items = append(items, domain.Item{
			ID:       fmt.Sprintf("item-%d", i),
			Label:    fmt.Sprintf("%s - option %d", group, i),
			Group:    group,
			Keywords: []string{group, fmt.Sprintf("option-%d", i), fmt.Sprintf("skill-%d", i%20)},
		})
	}
	return items
}

// File is the on-disk catalog layout
type File struct {
	Items []domain.Item `toml:"items"`
}

// Parse decodes and validates a TOML catalog
func Parse(data []byte) ([]domain.Item, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := Validate(file.Items); err != nil {
		return nil, err
	}
	return file.Items, nil
}

// LoadFile reads a TOML catalog from disk
func LoadFile(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return items, nil
}

// WriteFile stores items as a TOML catalog
func WriteFile(path string, items []domain.Item) error {
	data, err := toml.Marshal(File{Items: items})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// Validate rejects empty and duplicate ids
func Validate(items []domain.Item) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: item %d has an empty id", ErrInvalidCatalog, i)
		}
		if prev, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q at items %d and %d", ErrInvalidCatalog, item.ID, prev, i)
		}
		seen[item.ID] = i
	}
	return nil
}

// Source kinds
const (
	KindSynthetic = "synthetic"
	KindFile      = "file"
)

// Source describes where a catalog comes from
type Source struct {
	Kind string
	Path string
	Size int
}

func (s Source) String() string {
	if s.Kind == KindFile {
		return "file:" + s.Path
	}
	return fmt.Sprintf("synthetic:%d", s.Size)
}

// Service loads catalogs in the background and announces them on the bus
type Service interface {
	Load(ctx context.Context, src Source) error
	Wait()
}

type service struct {
	bus     eventbus.EventBus
	mu      sync.Mutex
	loading bool
	wg      sync.WaitGroup
	log     *logrus.Entry
}

// NewService creates a catalog service publishing to bus
func NewService(bus eventbus.EventBus) Service {
	return &service{
		bus: bus,
		log: logrus.WithField("component", "catalog"),
	}
}

// Load starts loading src. The result arrives as a CatalogLoadedEvent or an
// ErrorEvent. Only one load runs at a time.
func (s *service) Load(ctx context.Context, src Source) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return fmt.Errorf("catalog load already in progress")
	}
	s.loading = true
	s.mu.Unlock()

	s.bus.Publish(eventbus.CatalogLoadingEvent{Source: src.String()})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
		}()

		items, err := Read(ctx, src)
		if err != nil {
			s.log.WithError(err).WithField("source", src.String()).Error("catalog load failed")
			s.bus.Publish(eventbus.ErrorEvent{Message: "failed to load catalog", Err: err})
			return
		}

		fingerprint, err := engine.Fingerprint(items)
		if err != nil {
			s.log.WithError(err).Warn("catalog fingerprint unavailable")
		}

		s.log.WithFields(logrus.Fields{
			"source": src.String(),
			"items":  len(items),
		}).Info("catalog loaded")
		s.bus.Publish(eventbus.CatalogLoadedEvent{
			Source:      src.String(),
			Items:       items,
			Fingerprint: fingerprint,
		})
	}()

	return nil
}

// Wait blocks until the in-flight load, if any, has finished
func (s *service) Wait() {
	s.wg.Wait()
}

// Read loads src synchronously
func Read(ctx context.Context, src Source) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		items []domain.Item
		err   error
	)
	switch src.Kind {
	case KindFile:
		items, err = LoadFile(src.Path)
	case KindSynthetic, "":
		items = Synthetic(src.Size)
	default:
		err = fmt.Errorf("%w: unknown source %q", ErrInvalidCatalog, src.Kind)
	}
	if err != nil {
		return nil, err
	}

	// a cancelled load never replaces the catalog
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
