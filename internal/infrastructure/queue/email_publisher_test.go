package queue

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/lightbnb-api/pkg/mailer"
)

func TestNewEmailMessage(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))
	job := mailer.EmailJob{
		To:       "ana@example.com",
		Template: "welcome",
		Data:     map[string]any{"Name": "Ana"},
	}

	msg, err := newEmailMessage(job, now)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, now.UTC(), msg.Timestamp)
	assert.Equal(t, time.UTC, msg.Timestamp.Location())

	var got mailer.EmailJob
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, job, got)
	assert.NotContains(t, string(msg.Body), `"subject"`)
}

func TestNewEmailMessage_UnencodableData(t *testing.T) {
	_, err := newEmailMessage(mailer.EmailJob{To: "a@x.io", Data: map[string]any{"n": math.NaN()}}, time.Now())
	assert.Error(t, err)
}
