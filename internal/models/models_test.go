package models_test

import (
	"encoding/json"
	"testing"

	"agenda-modista/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_Valid(t *testing.T) {
	assert.True(t, models.JobStatusToDo.Valid())
	assert.True(t, models.JobStatusInProgress.Valid())
	assert.True(t, models.JobStatusDone.Valid())
	assert.False(t, models.JobStatus("Cancelado").Valid())
	assert.False(t, models.JobStatus("").Valid())
}

func TestJobStatus_Scan(t *testing.T) {
	var status models.JobStatus
	require.NoError(t, status.Scan("En Proceso"))
	assert.Equal(t, models.JobStatusInProgress, status)

	require.NoError(t, status.Scan([]byte("Terminado")))
	assert.Equal(t, models.JobStatusDone, status)

	assert.Error(t, status.Scan("Desconocido"))
	assert.Error(t, status.Scan(42))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	date := models.NewDate(2024, 3, 12)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-12"`, string(data))

	var parsed models.Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, date.Equal(parsed.Time))
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var parsed models.Date
	assert.Error(t, json.Unmarshal([]byte(`"12/03/2024"`), &parsed))
}

func TestMeasurements_Validate(t *testing.T) {
	valid := models.Measurements{
		{Name: "busto", Value: "92cm"},
		{Name: "cintura", Value: "74cm"},
	}
	assert.NoError(t, valid.Validate())

	blank := models.Measurements{{Name: "   ", Value: "10cm"}}
	assert.Error(t, blank.Validate())

	duplicate := models.Measurements{
		{Name: "cintura", Value: "74cm"},
		{Name: "cintura", Value: "75cm"},
	}
	assert.Error(t, duplicate.Validate())

	assert.NoError(t, models.Measurements(nil).Validate())
}

func TestMeasurements_ScanValue(t *testing.T) {
	original := models.Measurements{{Name: "largo", Value: "110cm"}}

	raw, err := original.Value()
	require.NoError(t, err)

	var scanned models.Measurements
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, original, scanned)

	var fromNil models.Measurements
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)
}

func TestMeasurements_PreserveInsertionOrder(t *testing.T) {
	// Display order is insertion order, so the JSON form must be an array.
	m := models.Measurements{
		{Name: "busto", Value: "92cm"},
		{Name: "cintura", Value: "74cm"},
		{Name: "cadera", Value: "98cm"},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded models.Measurements
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, m, decoded)
}
