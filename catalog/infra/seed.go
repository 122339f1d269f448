package infra

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"microservices-demo/catalog/domain"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed é o conjunto fixo de registros criado no início do processo.
type Seed struct {
	Users []domain.User `yaml:"users"`
	Items []domain.Item `yaml:"items"`
}

// DefaultSeed decodifica a seed embutida no binário.
func DefaultSeed() (Seed, error) {
	return ParseSeed(seedYAML)
}

// ParseSeed decodifica uma seed YAML e rejeita IDs duplicados.
func ParseSeed(data []byte) (Seed, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Seed
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Seed{}, errors.New("seed: empty document")
		}
		return Seed{}, fmt.Errorf("seed: %w", err)
	}

	seen := make(map[int]struct{}, len(s.Users))
	for _, u := range s.Users {
		if _, dup := seen[u.ID]; dup {
			return Seed{}, fmt.Errorf("seed: duplicate user id %d", u.ID)
		}
		seen[u.ID] = struct{}{}
	}
	seen = make(map[int]struct{}, len(s.Items))
	for _, it := range s.Items {
		if _, dup := seen[it.ID]; dup {
			return Seed{}, fmt.Errorf("seed: duplicate item id %d", it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return s, nil
}
