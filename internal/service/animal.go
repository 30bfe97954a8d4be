// Package service holds the domain objects served by the API.
package service

import "fmt"

// Animal is the data object behind the /Animal endpoint.
type Animal struct {
	Name    string `json:"name"`
	Species string `json:"Species"`
}

// NewAnimal creates an Animal with the given name and species.
func NewAnimal(name, species string) *Animal {
	return &Animal{Name: name, Species: species}
}

// MakeSound returns the animal's sound.
func (a *Animal) MakeSound() string {
	return "Roar!"
}

// String implements fmt.Stringer.
func (a *Animal) String() string {
	return fmt.Sprintf("%s is a %s", a.Name, a.Species)
}
