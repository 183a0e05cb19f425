package rental

// Customer is one customer's ordered rental history for a single statement.
// Totals are derived on demand by summation, never stored. AddRental is the
// only mutator; rentals keep insertion order because statements list them in
// the order they were added.
type Customer struct {
	name    string
	rentals []Rental
}

// NewCustomer constructs a customer with the provided rentals.
func NewCustomer(name string, rentals ...Rental) *Customer {
	c := &Customer{name: name}
	c.rentals = append(c.rentals, rentals...)
	return c
}

// Name returns the customer name.
func (c *Customer) Name() string { return c.name }

// AddRental appends a rental to the history.
func (c *Customer) AddRental(r Rental) {
	c.rentals = append(c.rentals, r)
}

// Rentals returns a copy of the rental history in insertion order.
func (c *Customer) Rentals() []Rental {
	out := make([]Rental, len(c.rentals))
	copy(out, c.rentals)
	return out
}

// TotalAmount sums the price of every rental. Zero for an empty history.
func (c *Customer) TotalAmount() float64 {
	var total float64
	for _, r := range c.rentals {
		total += r.Price()
	}
	return total
}

// TotalPoints sums the frequent renter points of every rental.
func (c *Customer) TotalPoints() int {
	var points int
	for _, r := range c.rentals {
		points += r.Points()
	}
	return points
}
