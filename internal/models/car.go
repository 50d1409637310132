package models

// Car represents a car record in the database
type Car struct {
	ID             int64  `json:"id" db:"id"`
	Model          string `json:"model" db:"model"`
	ManufacturerID int64  `json:"manufacturer_id" db:"manufacturer_id"`
}

// String returns the car model.
func (c Car) String() string {
	return c.Model
}

// AbsoluteURL returns the car detail path.
func (c Car) AbsoluteURL() string {
	return CarDetailURL(c.ID)
}

// CarListItem is a car row joined with its manufacturer.
type CarListItem struct {
	Car
	Manufacturer Manufacturer `json:"manufacturer" db:"manufacturer"`
}

// CarDetail is a car with its manufacturer and assigned drivers.
type CarDetail struct {
	CarListItem
	Drivers []Driver `json:"drivers"`
}

// HasDriver reports whether the driver is in the car's driver set.
func (c CarDetail) HasDriver(driverID int64) bool {
	for _, d := range c.Drivers {
		if d.ID == driverID {
			return true
		}
	}
	return false
}

// CarFilter narrows the car list by a case-insensitive substring of the
// model. An empty Model lists everything.
type CarFilter struct {
	Model string
}

// AssignmentEvent is published every time a driver joins or leaves a car.
type AssignmentEvent struct {
	EventID   string `json:"event_id"`
	CarID     int64  `json:"car_id"`
	DriverID  int64  `json:"driver_id"`
	Assigned  bool   `json:"assigned"`
	Timestamp int64  `json:"timestamp"`
}
