package fake

import "fmt"

// PlaceName returns a fantasy place name like "The Jade Oasis".
func (f *Faker) PlaceName() (string, error) {
	adjective, err := f.pickString("placeAdjectives")
	if err != nil {
		return "", err
	}
	noun, err := f.pickString("placeNouns")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("The %s %s", adjective, noun), nil
}
