package seeder

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoDataset []byte

// Dataset is the demo marketplace content.
type Dataset struct {
	Categories []CategorySeed `yaml:"categories"`
	Sellers    []SellerSeed   `yaml:"sellers"`
}

// CategorySeed is one category with its icon key.
type CategorySeed struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// SellerSeed is a demo account and the items it lists.
type SellerSeed struct {
	Email    string     `yaml:"email"`
	Username string     `yaml:"username"`
	Password string     `yaml:"password"`
	Phone    string     `yaml:"phone"`
	Items    []ItemSeed `yaml:"items"`
}

// ItemSeed is one demo listing. Category refers to a category by name.
type ItemSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Location    string `yaml:"location"`
	Category    string `yaml:"category"`
}

// LoadDataset parses the dataset at path, or the built-in demo set when
// path is empty.
func LoadDataset(path string) (*Dataset, error) {
	raw := demoDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		raw = b
	}
	return parseDataset(raw)
}

func parseDataset(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	for i, s := range ds.Sellers {
		if s.Email == "" || s.Username == "" {
			return nil, fmt.Errorf("parse dataset: seller %d: email and username are required", i)
		}
	}
	return &ds, nil
}
