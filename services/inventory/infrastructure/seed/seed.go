// Package seed provides the initial inventory: a built-in campus dataset or a
// YAML or TOML seed file.
package seed

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	inventorydomain "github.com/ghuser/assettrack/services/inventory/domain"
	"github.com/ghuser/assettrack/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/assettrack/services/inventory/domain/services"
)

// File is the YAML layout of a seed file. Ids are optional; missing ids are
// generated with the usual prefixes.
//
//	blocks:
//	  - name: Block A - Science Wing
//	    rooms:
//	      - name: Physics Lab (A-101)
//	        items:
//	          - name: Microscopes
//	            quantity: 15
//	            unitPrice: 350
//
// TOML files use the same keys with [[blocks]], [[blocks.rooms]] and
// [[blocks.rooms.items]] tables.
type File struct {
	Blocks []BlockEntry `yaml:"blocks" toml:"blocks"`
}

type BlockEntry struct {
	ID    string      `yaml:"id,omitempty" toml:"id,omitempty"`
	Name  string      `yaml:"name"         toml:"name"`
	Rooms []RoomEntry `yaml:"rooms"        toml:"rooms"`
}

type RoomEntry struct {
	ID    string      `yaml:"id,omitempty" toml:"id,omitempty"`
	Name  string      `yaml:"name"         toml:"name"`
	Items []ItemEntry `yaml:"items"        toml:"items"`
}

// ItemEntry.UnitPrice decodes through decimal's text unmarshaler, so YAML
// numbers keep every digit. TOML parses bare numbers as float64 first;
// quote prices there when they need more than 15 significant digits.
// Marshal always writes prices as quoted strings.
type ItemEntry struct {
	ID        string          `yaml:"id,omitempty" toml:"id,omitempty"`
	Name      string          `yaml:"name"         toml:"name"`
	Quantity  int64           `yaml:"quantity"     toml:"quantity"`
	UnitPrice decimal.Decimal `yaml:"unitPrice"    toml:"unitPrice"`
}

// Format selects the seed file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the encoding from a file extension; anything but .toml is YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load returns the inventory from path, or the built-in dataset when path is
// empty.
func Load(path string) (models.Inventory, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a seed file, decoding it as TOML when the
// extension is .toml and as YAML otherwise.
func LoadFile(path string) (models.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Inventory{}, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseFormat(data, FormatOf(path))
}

// Parse decodes YAML seed data into a validated inventory.
func Parse(data []byte) (models.Inventory, error) {
	return ParseFormat(data, FormatYAML)
}

// ParseFormat decodes seed data in the given format into a validated inventory.
func ParseFormat(data []byte, format Format) (models.Inventory, error) {
	var f File
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return models.Inventory{}, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidSeed, err)
	}

	inv := f.toInventory()
	if err := domainsvcs.ValidateInventory(inv); err != nil {
		return models.Inventory{}, err
	}
	return inv, nil
}

func (f File) toInventory() models.Inventory {
	blocks := make([]models.Block, 0, len(f.Blocks))
	for _, be := range f.Blocks {
		b := models.Block{
			ID:    models.BlockID(be.ID),
			Name:  models.Name(strings.TrimSpace(be.Name)),
			Rooms: make([]models.Room, 0, len(be.Rooms)),
		}
		if b.ID == "" {
			b.ID = models.NewBlockID()
		}
		for _, re := range be.Rooms {
			r := models.Room{
				ID:    models.RoomID(re.ID),
				Name:  models.Name(strings.TrimSpace(re.Name)),
				Items: make([]models.Item, 0, len(re.Items)),
			}
			if r.ID == "" {
				r.ID = models.NewRoomID()
			}
			for _, ie := range re.Items {
				it := models.Item{
					ID:        models.ItemID(ie.ID),
					Name:      models.Name(strings.TrimSpace(ie.Name)),
					Quantity:  ie.Quantity,
					UnitPrice: ie.UnitPrice,
				}
				if it.ID == "" {
					it.ID = models.NewItemID()
				}
				r.Items = append(r.Items, it)
			}
			b.Rooms = append(b.Rooms, r)
		}
		blocks = append(blocks, b)
	}
	return models.NewInventory(blocks...)
}

// Marshal encodes inv as a seed file, ids included.
func Marshal(inv models.Inventory, format Format) ([]byte, error) {
	f := fromInventory(inv)
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, fmt.Errorf("encode toml seed: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, fmt.Errorf("encode yaml seed: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml seed: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func fromInventory(inv models.Inventory) File {
	f := File{Blocks: make([]BlockEntry, 0, len(inv.Blocks))}
	for _, b := range inv.Blocks {
		be := BlockEntry{ID: string(b.ID), Name: b.Name.String(), Rooms: make([]RoomEntry, 0, len(b.Rooms))}
		for _, r := range b.Rooms {
			re := RoomEntry{ID: string(r.ID), Name: r.Name.String(), Items: make([]ItemEntry, 0, len(r.Items))}
			for _, it := range r.Items {
				re.Items = append(re.Items, ItemEntry{
					ID:        string(it.ID),
					Name:      it.Name.String(),
					Quantity:  it.Quantity,
					UnitPrice: it.UnitPrice,
				})
			}
			be.Rooms = append(be.Rooms, re)
		}
		f.Blocks = append(f.Blocks, be)
	}
	return f
}
