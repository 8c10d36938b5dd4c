package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"enersite-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestNewContactMailerDisabled(t *testing.T) {
	assert.Nil(t, NewBrevoClient("", "sender@x.com", "", false))
	assert.Nil(t, NewContactMailer(nil, "sales@x.com"))

	client := NewBrevoClient("key", "sender@x.com", "", false)
	assert.Nil(t, NewContactMailer(client, " "))
}

func TestContactNotificationHTMLEscapes(t *testing.T) {
	html, err := buildContactNotificationHTML(models.ContactSubmission{
		ID:             "abc",
		FirstName:      "<b>John</b>",
		LastName:       "Smith",
		Email:          "john@x.com",
		ProjectDetails: strPtr("50kW rooftop"),
	})
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;b&gt;John&lt;/b&gt;")
	assert.Contains(t, html, "50kW rooftop")
	assert.Contains(t, html, "<strong>Phone:</strong> -")
}

func TestSendContactNotification(t *testing.T) {
	var got brevoSendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<m1@brevo>"}`))
	}))
	defer srv.Close()

	client := NewBrevoClient("key", "noreply@site.example", "Site", true)
	client.endpoint = srv.URL
	mailer := NewContactMailer(client, "sales@site.example")

	id, err := mailer.SendContactNotification(context.Background(), models.ContactSubmission{
		ID:        "abc",
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@x.com",
		Company:   strPtr("Acme"),
	})
	require.NoError(t, err)
	assert.Equal(t, "<m1@brevo>", id)
	assert.Equal(t, "sales@site.example", got.To[0].Email)
	require.NotNil(t, got.ReplyTo)
	assert.Equal(t, "john@x.com", got.ReplyTo.Email)
	assert.Equal(t, "New enquiry from John Smith (Acme)", got.Subject)
	assert.Equal(t, "drop", got.Headers["X-Sib-Sandbox"])
	assert.Equal(t, []string{"contact-form"}, got.Tags)
}

func TestSendContactNotificationUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewBrevoClient("key", "noreply@site.example", "", false)
	client.endpoint = srv.URL
	mailer := NewContactMailer(client, "sales@site.example")

	_, err := mailer.SendContactNotification(context.Background(), models.ContactSubmission{FirstName: "A", LastName: "B", Email: "a@b.c"})
	var sendErr *SendError
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, http.StatusUnauthorized, sendErr.Status)
	assert.Contains(t, err.Error(), "status=401")
}
