package identity

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/bowerhall/name/internal/logger"
)

const (
	// FallbackName is used when no usable name can be generated.
	FallbackName = "Anonymous"

	maxAttempts = 10
)

// Generator produces synthetic first names. *gofakeit.Faker satisfies it.
type Generator interface {
	FirstName() string
}

// Identity is the name and host reported on every response.
type Identity struct {
	Name string
	Host string
}

func (id Identity) String() string {
	return id.Name + " (" + id.Host + ")"
}

// NewGenerator returns a randomly seeded faker.
func NewGenerator() Generator {
	return gofakeit.New(0)
}

// Resolve builds the identity once at startup. A non-empty override is used
// verbatim; otherwise a name is drawn from gen.
func Resolve(override, hostname string, gen Generator) Identity {
	name := override
	if name == "" {
		name = generate(gen)
	}

	return Identity{Name: name, Host: hostname}
}

func generate(gen Generator) string {
	if gen == nil {
		return FallbackName
	}

	for range maxAttempts {
		if name := gen.FirstName(); isLetters(name) {
			return name
		}
	}

	logger.Warn("name generation failed, using fallback", "fallback", FallbackName)
	return FallbackName
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
