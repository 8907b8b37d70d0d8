package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(verifier *Verifier, dispatcher *Dispatcher) *Server {
	return &Server{
		verifier:   verifier,
		dispatcher: dispatcher,
		healthy:    true,
	}
}

func postNotification(t *testing.T, x *Server, notification *Notification) *httptest.ResponseRecorder {
	body, err := json.Marshal(notification)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/webhook/events", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	x.handleEvents(rec, req)
	return rec
}

func TestHandleEvents(t *testing.T) {
	signer := newTestSigner(t)

	t.Run("Verified Event Is Dispatched", func(t *testing.T) {
		dispatcher := NewDispatcher()
		var handled atomic.Bool
		dispatcher.Register(EventNameMintRequestUpdated, func(event *Event) error {
			handled.Store(true)
			assert.Equal(t, "evt-1", event.EventId)
			return nil
		})
		x := newTestServer(signer.verifier(testTopicArnPrefix), dispatcher)

		n := &Notification{
			Type:             TypeNotification,
			MessageId:        "message-1",
			TopicArn:         testTopicArn,
			Message:          `{"event_name":"imtbl_zkevm_mint_request_updated","event_id":"evt-1","chain":"imtbl-zkevm-testnet","data":{}}`,
			Timestamp:        "2024-01-01T00:00:00Z",
			SignatureVersion: SignatureVersion2,
			SigningCertURL:   signer.certURL,
		}
		signer.sign(t, n)

		rec := postNotification(t, x, n)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, handled.Load())
		assert.Equal(t, "evt-1", x.Health().LastEventId)
	})

	t.Run("Tampered Envelope Is Rejected", func(t *testing.T) {
		dispatcher := NewDispatcher()
		dispatcher.RegisterAll(func(event *Event) error {
			t.Fatal("unverified event must not be dispatched")
			return nil
		})
		x := newTestServer(signer.verifier(testTopicArnPrefix), dispatcher)

		n := signer.notification(t, SignatureVersion2)
		n.Message = `{"event_name":"imtbl_zkevm_mint_request_updated","event_id":"evt-x","data":{}}`

		rec := postNotification(t, x, n)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Handler Error Yields 500 For Redelivery", func(t *testing.T) {
		dispatcher := NewDispatcher()
		dispatcher.Register(EventNameMintRequestUpdated, func(event *Event) error {
			return errors.New("store unavailable")
		})
		x := newTestServer(signer.verifier(testTopicArnPrefix), dispatcher)

		rec := postNotification(t, x, signer.notification(t, SignatureVersion2))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		x := newTestServer(signer.verifier(testTopicArnPrefix), NewDispatcher())

		req := httptest.NewRequest("POST", "/webhook/events", bytes.NewReader([]byte("not json")))
		rec := httptest.NewRecorder()
		x.handleEvents(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Subscription Confirmation Handshake", func(t *testing.T) {
		var confirmed atomic.Bool
		confirmServer := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			confirmed.Store(true)
		}))
		defer confirmServer.Close()

		// one client that trusts both test servers is not worth wiring;
		// point the verifier's client at the confirm server and serve the
		// cert from cache
		v := signer.verifier(testTopicArnPrefix)
		warmup := signer.notification(t, SignatureVersion2)
		require.NoError(t, v.Verify(warmup))
		v.httpClient = confirmServer.Client()

		x := newTestServer(v, NewDispatcher())

		n := &Notification{
			Type:             TypeSubscriptionConfirmation,
			MessageId:        "message-2",
			TopicArn:         testTopicArn,
			Token:            "token-1",
			Message:          "You have chosen to subscribe to the topic",
			Timestamp:        "2024-01-01T00:00:00Z",
			SignatureVersion: SignatureVersion2,
			SigningCertURL:   signer.certURL,
			SubscribeURL:     confirmServer.URL + "/confirm",
		}
		signer.sign(t, n)

		rec := postNotification(t, x, n)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, confirmed.Load())
	})
}
