package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

func TestWebhookChannel_PostsDeliveryMessage(t *testing.T) {
	var received deliveryMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ch := NewWebhookChannel(srv.URL, 2*time.Second)
	contacts := []models.EmergencyContact{{Name: "Alex", Phone: "+15550100", NotificationEnabled: true}}
	alerts := dispatchAlerts()

	err := ch.Deliver(context.Background(), "patient-1", contacts, alerts)
	require.NoError(t, err)

	assert.Equal(t, "patient-1", received.PatientID)
	require.Len(t, received.Contacts, 1)
	assert.Equal(t, "Alex", received.Contacts[0].Name)
	require.Len(t, received.Alerts, 1)
	assert.Equal(t, "alert-1", received.Alerts[0].AlertID)
}

func TestWebhookChannel_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ch := NewWebhookChannel(srv.URL, 2*time.Second)
	err := ch.Deliver(context.Background(), "patient-1", nil, dispatchAlerts())
	assert.Error(t, err)
}

func TestWebhookChannel_FailurePropagatesAsDispatchFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	contacts := new(MockContactsSource)
	contacts.On("GetContacts", mock.Anything, "patient-1").
		Return([]models.EmergencyContact{{Name: "Alex", NotificationEnabled: true}}, nil)

	d := NewDispatcher(contacts, NewWebhookChannel(srv.URL, 2*time.Second), zap.NewNop())
	err := d.Dispatch(context.Background(), "patient-1", dispatchAlerts())
	assert.ErrorIs(t, err, apperrors.ErrDispatchFailed)
}
