package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentService_Toggle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		wasAssigned  bool
		wantAssigned bool
	}{
		{name: "assigns absent driver", wasAssigned: false, wantAssigned: true},
		{name: "unassigns present driver", wasAssigned: true, wantAssigned: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockAssignmentStore(ctrl)
			writer := NewMockKafkaWriter(ctrl)
			svc := NewAssignmentService(store, writer)

			gomock.InOrder(
				store.EXPECT().LockCar(ctx, int64(5)).Return(nil),
				store.EXPECT().IsAssigned(ctx, int64(5), plainCaller.DriverID).Return(tt.wasAssigned, nil),
			)
			if tt.wasAssigned {
				store.EXPECT().Unassign(ctx, int64(5), plainCaller.DriverID).Return(nil)
			} else {
				store.EXPECT().Assign(ctx, int64(5), plainCaller.DriverID).Return(nil)
			}
			writer.EXPECT().WriteMessages(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
					require.Len(t, msgs, 1)
					var event models.AssignmentEvent
					require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
					assert.Equal(t, int64(5), event.CarID)
					assert.Equal(t, plainCaller.DriverID, event.DriverID)
					assert.Equal(t, tt.wantAssigned, event.Assigned)
					assert.Equal(t, "5", string(msgs[0].Key))
					return nil
				})

			assigned, err := svc.Toggle(ctx, plainCaller, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAssigned, assigned)
		})
	}
}

func TestAssignmentService_Toggle_Errors(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAssignmentStore(ctrl)
	svc := NewAssignmentService(store, nil)

	// Missing car
	store.EXPECT().LockCar(ctx, int64(404)).Return(sql.ErrNoRows)
	_, err := svc.Toggle(ctx, plainCaller, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	// Anonymous caller never reaches the store
	_, err = svc.Toggle(ctx, nil, 5)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// Write failure
	store.EXPECT().LockCar(ctx, int64(5)).Return(nil)
	store.EXPECT().IsAssigned(ctx, int64(5), plainCaller.DriverID).Return(false, nil)
	store.EXPECT().Assign(ctx, int64(5), plainCaller.DriverID).Return(errors.New("db error"))
	_, err = svc.Toggle(ctx, plainCaller, 5)
	assert.EqualError(t, err, "db error")
}

func TestAssignmentService_publishAssignment(t *testing.T) {
	ctx := context.Background()
	event := models.AssignmentEvent{EventID: "evt-1", CarID: 1, DriverID: 2, Assigned: true}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	svc := &AssignmentService{kafkaWriter: mockKafka}

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil).Times(1)
	svc.publishAssignment(ctx, event)

	// Publishing errors are only logged
	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka error")).Times(1)
	svc.publishAssignment(ctx, event)

	// Nil writer must not panic
	svc = &AssignmentService{}
	svc.publishAssignment(ctx, event)
}
