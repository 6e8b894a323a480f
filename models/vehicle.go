package models

// Vehicle is a catalog entry for a fleet car. DriverID is nil when no driver is
// assigned; legacy rows store 0 for the same meaning and are normalized on read.
type Vehicle struct {
	ID       int64  `bson:"id" json:"id"`
	Model    string `bson:"model" json:"model"`
	Category string `bson:"category" json:"category"`
	DriverID *int64 `bson:"driver_id,omitempty" json:"driver_id,omitempty"`
	Active   bool   `bson:"active" json:"-"`
}

// Driver is a reference record for a person assigned to drive a fleet car.
type Driver struct {
	ID   int64  `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
