package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=assignment.go -destination=mock_assignment.go -package=services

// AssignmentStore flips rows of the car to driver join table. LockCar must
// hold the car row for the rest of the surrounding transaction.
type AssignmentStore interface {
	LockCar(ctx context.Context, carID int64) error
	IsAssigned(ctx context.Context, carID, driverID int64) (bool, error)
	Assign(ctx context.Context, carID, driverID int64) error
	Unassign(ctx context.Context, carID, driverID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AssignmentService toggles the caller in and out of a car's driver set.
type AssignmentService struct {
	store       AssignmentStore
	kafkaWriter KafkaWriter
}

// NewAssignmentService creates an AssignmentService. kafkaWriter may be nil.
func NewAssignmentService(store AssignmentStore, kafkaWriter KafkaWriter) *AssignmentService {
	return &AssignmentService{store: store, kafkaWriter: kafkaWriter}
}

// Toggle adds the caller to the car's drivers if absent, otherwise removes
// them, and reports whether the caller is assigned afterwards.
func (s *AssignmentService) Toggle(ctx context.Context, caller *models.Caller, carID int64) (bool, error) {
	if err := authorize(caller, ""); err != nil {
		return false, err
	}

	if err := s.store.LockCar(ctx, carID); err != nil {
		return false, notFound(err)
	}

	assigned, err := s.store.IsAssigned(ctx, carID, caller.DriverID)
	if err != nil {
		logger.Log.Errorw("failed to check assignment", "car_id", carID, "driver_id", caller.DriverID, "error", err)
		return false, err
	}

	if assigned {
		err = s.store.Unassign(ctx, carID, caller.DriverID)
	} else {
		err = s.store.Assign(ctx, carID, caller.DriverID)
	}
	if err != nil {
		logger.Log.Errorw("failed to toggle assignment", "car_id", carID, "driver_id", caller.DriverID, "error", err)
		return false, err
	}

	s.publishAssignment(ctx, models.AssignmentEvent{
		EventID:   uuid.NewString(),
		CarID:     carID,
		DriverID:  caller.DriverID,
		Assigned:  !assigned,
		Timestamp: time.Now().Unix(),
	})

	return !assigned, nil
}

// publishAssignment publishes an assignment change to Kafka.
func (s *AssignmentService) publishAssignment(ctx context.Context, event models.AssignmentEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal assignment for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CarID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish assignment to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Assignment published to Kafka", "event_id", event.EventID, "car_id", event.CarID, "assigned", event.Assigned)
	}
}
