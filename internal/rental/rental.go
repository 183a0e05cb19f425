package rental

import "github.com/noah-isme/backend-rental/internal/genre"

// Rental is one rented title bound to a genre and a duration. It is immutable
// after construction and derives price and points by delegating to the genre;
// nothing is cached since genre formulas are cheap pure functions.
//
// Callers must ensure daysRented is not negative before constructing a
// rental; the genre formulas do not guard against it.
type Rental struct {
	title      string
	genre      genre.Genre
	daysRented int
}

// NewRental constructs a rental line.
func NewRental(title string, g genre.Genre, daysRented int) Rental {
	return Rental{title: title, genre: g, daysRented: daysRented}
}

// Title returns the rented movie title.
func (r Rental) Title() string { return r.title }

// Genre returns the pricing genre this rental is bound to.
func (r Rental) Genre() genre.Genre { return r.genre }

// DaysRented returns the rental duration in days.
func (r Rental) DaysRented() int { return r.daysRented }

// Price returns the charge for this rental.
func (r Rental) Price() float64 { return r.genre.Price(r.daysRented) }

// Points returns the frequent renter points earned by this rental.
func (r Rental) Points() int { return r.genre.Points(r.daysRented) }
