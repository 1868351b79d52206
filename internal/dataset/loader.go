// Package dataset loads the read-only procurement snapshot from TOML.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"procura/internal/domain"
)

//go:embed sample.toml
var sample []byte

var (
	ErrRequired         = errors.New("is required")
	ErrUnknownReference = errors.New("unknown reference")
	ErrDuplicateID      = errors.New("is not unique")
)

// Default returns the embedded sample dataset
func Default() (*domain.Dataset, error) {
	ds, err := Decode(sample)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sample dataset: %w", err)
	}
	return ds, nil
}

// Load reads a dataset file
func Load(path string) (*domain.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	ds, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses and validates a TOML dataset
func Decode(data []byte) (*domain.Dataset, error) {
	var ds domain.Dataset
	if err := toml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	assignIDs(&ds)
	if err := validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func assignIDs(ds *domain.Dataset) {
	for i := range ds.Vendors {
		if ds.Vendors[i].ID == "" {
			ds.Vendors[i].ID = uuid.NewString()
		}
	}
	for i := range ds.Items {
		if ds.Items[i].ID == "" {
			ds.Items[i].ID = uuid.NewString()
		}
	}
	for i := range ds.Purchases {
		if ds.Purchases[i].ID == "" {
			ds.Purchases[i].ID = uuid.NewString()
		}
	}
	for i := range ds.Tenders {
		if ds.Tenders[i].ID == "" {
			ds.Tenders[i].ID = uuid.NewString()
		}
	}
}

func required(table string, i int, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s[%d]: %s %w", table, i, field, ErrRequired)
	}
	return nil
}

// unique records id as seen in table, rejecting a repeat
func unique(seen map[string]bool, table string, i int, id string) error {
	if seen[id] {
		return fmt.Errorf("%s[%d]: id %q %w", table, i, id, ErrDuplicateID)
	}
	seen[id] = true
	return nil
}

func validate(ds *domain.Dataset) error {
	vendors := make(map[string]bool, len(ds.Vendors))
	items := make(map[string]bool, len(ds.Items))

	for i, v := range ds.Vendors {
		if err := required("vendors", i, "name", v.Name); err != nil {
			return err
		}
		if err := unique(vendors, "vendors", i, v.ID); err != nil {
			return err
		}
	}
	for i, it := range ds.Items {
		if err := required("items", i, "name", it.Name); err != nil {
			return err
		}
		if err := unique(items, "items", i, it.ID); err != nil {
			return err
		}
	}
	for i, o := range ds.Offers {
		if !vendors[o.VendorID] {
			return fmt.Errorf("offers[%d]: vendor %q: %w", i, o.VendorID, ErrUnknownReference)
		}
		if !items[o.ItemID] {
			return fmt.Errorf("offers[%d]: item %q: %w", i, o.ItemID, ErrUnknownReference)
		}
	}
	purchases := make(map[string]bool, len(ds.Purchases))
	for i, p := range ds.Purchases {
		if err := required("purchases", i, "number", p.Number); err != nil {
			return err
		}
		if err := unique(purchases, "purchases", i, p.ID); err != nil {
			return err
		}
		if !vendors[p.VendorID] {
			return fmt.Errorf("purchases[%d]: vendor %q: %w", i, p.VendorID, ErrUnknownReference)
		}
		if !items[p.ItemID] {
			return fmt.Errorf("purchases[%d]: item %q: %w", i, p.ItemID, ErrUnknownReference)
		}
	}
	tenders := make(map[string]bool, len(ds.Tenders))
	for i, t := range ds.Tenders {
		if err := required("tenders", i, "number", t.Number); err != nil {
			return err
		}
		if err := unique(tenders, "tenders", i, t.ID); err != nil {
			return err
		}
		if err := required("tenders", i, "title", t.Title); err != nil {
			return err
		}
	}
	return nil
}
