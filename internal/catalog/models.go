package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Film defines a film in the catalog. Price is the film's share of a
// ticket, added on top of the seat-variant price at booking time.
type Film struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Director    string    `json:"director"`
	Duration    int       `json:"duration"`
	Genre       string    `json:"genre"`
	Price       float64   `gorm:"not null" json:"price"`
	Status      string    `gorm:"type:varchar(20);default:'SHOWING'" json:"status"`
	ReleaseDate time.Time `json:"release_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Address defines a theater address
type Address struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StreetNumber string    `json:"street_number"`
	StreetName   string    `json:"street_name"`
	City         string    `json:"city"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Theater defines a cinema location
type Theater struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	AddressID uuid.UUID `gorm:"type:uuid" json:"address_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Address *Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
}

// Auditorium defines a screening room inside a theater
type Auditorium struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Number    int       `gorm:"not null" json:"number"`
	TheaterID uuid.UUID `gorm:"type:uuid;index;not null" json:"theater_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Theater *Theater `json:"theater,omitempty" gorm:"foreignKey:TheaterID;constraint:OnDelete:CASCADE;"`
}

// SeatVariant defines the pricing class of a seat (STANDARD, VIP, COUPLE).
// BasePrice plus Bonus is the seat's share of a ticket.
type SeatVariant struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SeatType  string    `gorm:"type:varchar(20);not null" json:"seat_type"`
	BasePrice float64   `gorm:"not null" json:"base_price"`
	Bonus     float64   `json:"bonus"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShowTime defines one screening of a film in an auditorium
type ShowTime struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FilmID       uuid.UUID `gorm:"type:uuid;index;not null" json:"film_id"`
	AuditoriumID uuid.UUID `gorm:"type:uuid;index;not null" json:"auditorium_id"`
	Date         time.Time `gorm:"type:date;not null" json:"date"`
	StartTime    time.Time `gorm:"not null" json:"start_time"`
	EndTime      time.Time `gorm:"not null" json:"end_time"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Film       *Film       `json:"film,omitempty" gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;"`
	Auditorium *Auditorium `json:"auditorium,omitempty" gorm:"foreignKey:AuditoriumID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for Film
func (Film) TableName() string {
	return "films"
}

// TableName sets the table name for Address
func (Address) TableName() string {
	return "addresses"
}

// TableName sets the table name for Theater
func (Theater) TableName() string {
	return "theaters"
}

// TableName sets the table name for Auditorium
func (Auditorium) TableName() string {
	return "auditoriums"
}

// TableName sets the table name for SeatVariant
func (SeatVariant) TableName() string {
	return "seat_variants"
}

// TableName sets the table name for ShowTime
func (ShowTime) TableName() string {
	return "showtimes"
}
