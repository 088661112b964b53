package domain

type Dealership struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Rating       float64 `json:"rating" yaml:"rating"`
	Location     string  `json:"location" yaml:"location"`
	ContactPhone string  `json:"contact_phone" yaml:"contact_phone"`
	ContactEmail string  `json:"contact_email" yaml:"contact_email"`
}

type CarListing struct {
	ID            string     `json:"id" yaml:"id"`
	Make          string     `json:"make" yaml:"make"`
	Model         string     `json:"model" yaml:"model"`
	Year          int        `json:"year" yaml:"year"`
	Price         float64    `json:"price" yaml:"price"`
	Mileage       int        `json:"mileage" yaml:"mileage"`
	ExteriorColor string     `json:"exterior_color" yaml:"exterior_color"`
	InteriorColor string     `json:"interior_color" yaml:"interior_color"`
	FuelType      string     `json:"fuel_type" yaml:"fuel_type"`
	Transmission  string     `json:"transmission" yaml:"transmission"`
	Engine        string     `json:"engine" yaml:"engine"`
	VIN           string     `json:"vin" yaml:"vin"`
	BodyType      string     `json:"body_type" yaml:"body_type"`
	Features      []string   `json:"features" yaml:"features"`
	Description   string     `json:"description" yaml:"description"`
	ImageURL      string     `json:"image_url" yaml:"image_url"`
	Dealership    Dealership `json:"dealership" yaml:"dealership"`
}

// ListingFilter holds the optional search criteria. Zero values mean "any".
type ListingFilter struct {
	Make       string
	Model      string
	BodyType   string
	YearMin    int
	YearMax    int
	PriceMin   float64
	PriceMax   float64
	MileageMax int
	Query      string
}

type CarOptions struct {
	Makes         []string `json:"makes" yaml:"makes"`
	Models        []string `json:"models" yaml:"models"`
	Years         []string `json:"years" yaml:"-"`
	BodyTypes     []string `json:"body_types" yaml:"body_types"`
	Transmissions []string `json:"transmissions" yaml:"transmissions"`
	FuelTypes     []string `json:"fuel_types" yaml:"fuel_types"`
	Colors        []string `json:"colors" yaml:"colors"`
}
