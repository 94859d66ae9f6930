package quantity_test

import (
	"fmt"

	"github.com/quentar/astroion/quantity"
)

// ExampleParse tokenizes a velocity string without resolving the unit.
func ExampleParse() {
	q, err := quantity.Parse("5 km/s", nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%g unit=%s\n", q.Value, q.Unit)
	// Output:
	// value=5 unit=km/s
}
