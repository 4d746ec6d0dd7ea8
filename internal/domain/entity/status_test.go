package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordStatusIsValid(t *testing.T) {
	assert.True(t, RecordStatusActive.IsValid())
	assert.True(t, RecordStatusInactive.IsValid())
	assert.False(t, RecordStatus("SUSPENDIDO").IsValid())
	assert.False(t, RecordStatus("").IsValid())
}

func TestAppointmentStatusIsValid(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.IsValid())
	assert.True(t, AppointmentStatusCompleted.IsValid())
	assert.True(t, AppointmentStatusCancelled.IsValid())
	assert.False(t, AppointmentStatus("PENDIENTE").IsValid())
}

func TestAppointmentStatusTransitions(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusCompleted))
	assert.True(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusCancelled))
	assert.True(t, AppointmentStatusCompleted.CanTransitionTo(AppointmentStatusCancelled))

	// Nothing ever leaves CANCELADA.
	assert.False(t, AppointmentStatusCancelled.CanTransitionTo(AppointmentStatusScheduled))
	assert.False(t, AppointmentStatusCancelled.CanTransitionTo(AppointmentStatusCompleted))
	assert.False(t, AppointmentStatusCompleted.CanTransitionTo(AppointmentStatusScheduled))
	assert.False(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusScheduled))
}

func TestPatientSoftDelete(t *testing.T) {
	p := &Patient{Nombre: "Ana", Estado: RecordStatusActive}
	assert.True(t, p.IsActive())

	p.Deactivate()
	assert.False(t, p.IsActive())
	assert.Equal(t, RecordStatusInactive, p.Estado)
}

func TestAppointmentCancelHelper(t *testing.T) {
	a := &Appointment{Estado: AppointmentStatusScheduled}
	assert.True(t, a.IsScheduled())
	assert.False(t, a.IsCancelled())

	a.Cancel()
	assert.True(t, a.IsCancelled())
	assert.False(t, a.IsScheduled())
}
