package domain

import "time"

const (
	CarStatusPredicted        = "predicted"
	CarStatusInspectionBooked = "inspection_booked"

	OrderStatusCreated  = "created"
	OrderStatusVerified = "verified"

	BookingStatusConfirmed = "confirmed"
)

type User struct {
	UserID       string    `gorm:"primaryKey" json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}

// Car is one prediction record. Optional inputs are stored with their
// resolved defaults so the priced configuration is reproducible.
type Car struct {
	CarID          string    `gorm:"primaryKey" json:"car_id"`
	UserID         string    `gorm:"index" json:"user_id"`
	Name           string    `json:"name"`
	Year           int       `json:"year"`
	KmDriven       float64   `json:"km_driven"`
	Fuel           string    `json:"fuel"`
	SellerType     string    `json:"seller_type"`
	Transmission   string    `json:"transmission"`
	Owner          string    `json:"owner"`
	Mileage        float64   `json:"mileage"`
	Engine         float64   `json:"engine"`
	MaxPower       float64   `json:"max_power"`
	Seats          int       `json:"seats"`
	PredictedPrice int       `json:"predicted_price"`
	Status         string    `gorm:"index" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Payment is a gateway order; the id is minted by Razorpay. It moves
// created -> verified exactly once, on a valid callback signature.
type Payment struct {
	OrderID       string     `gorm:"primaryKey" json:"order_id"`
	CarID         string     `gorm:"index" json:"car_id"`
	UserID        string     `gorm:"index" json:"user_id"`
	Amount        int64      `json:"amount"` // paise
	Currency      string     `json:"currency"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone"`
	Status        string     `gorm:"index" json:"status"`
	PaymentID     string     `json:"payment_id,omitempty"`
	Signature     string     `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
}

type Booking struct {
	BookingID      string    `gorm:"primaryKey" json:"booking_id"`
	CarID          string    `gorm:"index" json:"car_id"`
	OrderID        string    `gorm:"index" json:"order_id"`
	UserID         string    `gorm:"index" json:"user_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	CustomerPhone  string    `json:"customer_phone"`
	Address        string    `json:"address"`
	InspectionDate string    `json:"inspection_date"`
	InspectionTime string    `json:"inspection_time"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
