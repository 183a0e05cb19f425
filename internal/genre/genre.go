package genre

// Genre is a pricing policy for one movie category. Implementations must be
// stateless and safe for concurrent use; price and points are pure functions
// of the rental duration.
type Genre interface {
	Name() string
	Price(daysRented int) float64
	Points(daysRented int) int
}

// Built-in genres. Additional genres can be registered at runtime by
// implementing the Genre interface; nothing downstream needs to change.
var (
	Regular    Genre = regular{}
	NewRelease Genre = newRelease{}
	Childrens  Genre = childrens{}
)

type regular struct{}

func (regular) Name() string { return "Regular" }

func (regular) Price(daysRented int) float64 {
	amount := 2.0
	if daysRented > 2 {
		amount += float64(daysRented-2) * 1.5
	}
	return amount
}

func (regular) Points(int) int { return 1 }

type newRelease struct{}

func (newRelease) Name() string { return "New Release" }

func (newRelease) Price(daysRented int) float64 {
	return float64(daysRented) * 3.0
}

func (newRelease) Points(daysRented int) int {
	if daysRented > 1 {
		return 2
	}
	return 1
}

type childrens struct{}

func (childrens) Name() string { return "Children's" }

func (childrens) Price(daysRented int) float64 {
	amount := 1.5
	if daysRented > 3 {
		amount += float64(daysRented-3) * 1.5
	}
	return amount
}

func (childrens) Points(int) int { return 1 }
