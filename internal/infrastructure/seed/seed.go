// Package seed holds the demo data used when a collection has never been
// persisted.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"mercado_erp/internal/domain/entities"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type Fixtures struct {
	Users            []entities.User
	Suppliers        []entities.Supplier
	Products         []entities.Product
	Invoices         []entities.Invoice
	FinancialRecords []entities.FinancialRecord
	Trips            []entities.Trip
}

// fixtureUser carries the plain demo password, hashed on load.
type fixtureUser struct {
	entities.User
	Password string `json:"password"`
}

// Load parses the embedded fixtures. cost is the bcrypt cost for the demo
// passwords; values below bcrypt.MinCost use bcrypt.DefaultCost.
func Load(cost int) (Fixtures, error) {
	return parse(fixturesYAML, cost)
}

func parse(doc []byte, cost int) (Fixtures, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	var raw map[string]any
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return Fixtures{}, fmt.Errorf("seed: parse fixtures: %w", err)
	}

	var fx Fixtures
	var users []fixtureUser
	sections := []struct {
		key string
		dst any
	}{
		{"users", &users},
		{"suppliers", &fx.Suppliers},
		{"products", &fx.Products},
		{"invoices", &fx.Invoices},
		{"financial_records", &fx.FinancialRecords},
		{"trips", &fx.Trips},
	}
	for _, s := range sections {
		if err := convert(raw[s.key], s.dst); err != nil {
			return Fixtures{}, fmt.Errorf("seed: section %s: %w", s.key, err)
		}
	}

	fx.Users = make([]entities.User, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return Fixtures{}, fmt.Errorf("seed: hash password for %s: %w", u.Username, err)
		}
		u.User.PasswordHash = string(hash)
		fx.Users = append(fx.Users, u.User)
	}
	return fx, nil
}

// convert maps a decoded YAML node onto the json-tagged entity types.
func convert(node any, dst any) error {
	if node == nil {
		return nil
	}
	b, err := json.Marshal(node)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
