package listing

// Categories offered as checkbox filters.
var Categories = []string{
	"Programming",
	"Data Science",
	"Designing",
	"Networking",
	"Management",
	"Marketing",
	"Cybersecurity",
}

// Locations offered as checkbox filters.
var Locations = []string{
	"Bangalore",
	"Washington",
	"Hyderabad",
	"Mumbai",
	"California",
	"Chennai",
	"New York",
}
