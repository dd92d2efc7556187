package source

import (
	"context"
	"math/rand"

	"tableflip.dev/roster/pkg/student"
)

// Sample fabricates a roster without touching the network. Used by the
// --sample flag and by tests.
type Sample struct {
	Size int
	Seed int64
}

// seedUsers is a small fixed pool standing in for the remote payload.
var seedUsers = []remoteUser{
	newSeedUser("Leanne Graham", "Romaguera-Crona", "Kulas Light", "Gwenborough"),
	newSeedUser("Ervin Howell", "Deckow-Crist", "Victor Plains", "Wisokyburgh"),
	newSeedUser("Clementine Bauch", "Romaguera-Jacobson", "Douglas Extension", "McKenziehaven"),
	newSeedUser("Patricia Lebsack", "Robel-Corkery", "Hoeger Mall", "South Elvis"),
	newSeedUser("Chelsey Dietrich", "Keebler LLC", "Skiles Walks", "Roscoeview"),
	newSeedUser("Dennis Schulist", "Considine-Lockman", "Norberto Crossing", "South Christy"),
	newSeedUser("Kurtis Weissnat", "Johns Group", "Rex Trail", "Howemouth"),
	newSeedUser("Nicholas Runolfsdottir", "Abernathy Group", "Ellsworth Summit", "Aliyaview"),
	newSeedUser("Glenna Reichert", "Yost and Sons", "Dayna Park", "Bartholomebury"),
	newSeedUser("Clementina DuBuque", "Hoeger LLC", "Kattie Turnpike", "Lebsackbury"),
}

func newSeedUser(name, company, street, city string) remoteUser {
	var u remoteUser
	u.Name = name
	u.Company.Name = company
	u.Address.Street = street
	u.Address.City = city
	return u
}

// Load implements Source. It never fails.
func (s *Sample) Load(ctx context.Context) ([]student.Student, error) {
	size := s.Size
	if size <= 0 {
		size = defaultRosterSize
	}
	seed := s.Seed
	if seed == 0 {
		seed = 1
	}
	return fabricate(seedUsers, size, rand.New(rand.NewSource(seed))), nil
}
