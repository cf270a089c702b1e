package providers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orangeot/backoffice-api/internal/careers"
	"github.com/orangeot/backoffice-api/internal/config"
)

func sampleResume() careers.Resume {
	return careers.Resume{
		Filename:    "resume.pdf",
		Size:        13,
		ContentType: "application/pdf",
		Data:        []byte("fake pdf data"),
	}
}

func TestInline_Upload(t *testing.T) {
	t.Run("encodes the file as a data url", func(t *testing.T) {
		resume := sampleResume()

		reference, err := NewInline().Upload(context.Background(), resume)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(reference, "data:application/pdf;base64,"))

		encoded := strings.TrimPrefix(reference, "data:application/pdf;base64,")
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Equal(t, resume.Data, decoded)
	})

	t.Run("rejects empty data", func(t *testing.T) {
		_, err := NewInline().Upload(context.Background(), careers.Resume{Filename: "x.pdf"})
		require.Error(t, err)
	})
}

func TestFileHost_Upload(t *testing.T) {
	t.Run("json provider returns the link", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "resume.pdf", header.Filename)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"link":"https://file.io/abc123"}`))
		}))
		defer srv.Close()

		host := NewFileHost(config.ProviderConfig{Name: "fileio", URL: srv.URL, Response: "json"}, srv.Client())
		link, err := host.Upload(context.Background(), sampleResume())

		require.NoError(t, err)
		assert.Equal(t, "https://file.io/abc123", link)
	})

	t.Run("json provider with success false", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false}`))
		}))
		defer srv.Close()

		host := NewFileHost(config.ProviderConfig{Name: "fileio", URL: srv.URL, Response: "json"}, srv.Client())
		_, err := host.Upload(context.Background(), sampleResume())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no link")
	})

	t.Run("text provider returns the trimmed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("https://0x0.st/XyZ.pdf\n"))
		}))
		defer srv.Close()

		host := NewFileHost(config.ProviderConfig{Name: "nullpointer", URL: srv.URL, Response: "text"}, srv.Client())
		link, err := host.Upload(context.Background(), sampleResume())

		require.NoError(t, err)
		assert.Equal(t, "https://0x0.st/XyZ.pdf", link)
	})

	t.Run("text provider with garbage body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("internal error"))
		}))
		defer srv.Close()

		host := NewFileHost(config.ProviderConfig{Name: "nullpointer", URL: srv.URL, Response: "text"}, srv.Client())
		_, err := host.Upload(context.Background(), sampleResume())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a link")
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		host := NewFileHost(config.ProviderConfig{Name: "fileio", URL: srv.URL}, srv.Client())
		_, err := host.Upload(context.Background(), sampleResume())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("timeout is honored", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"success":true,"link":"https://file.io/late"}`))
		}))
		defer srv.Close()

		host := NewFileHost(config.ProviderConfig{
			Name:    "fileio",
			URL:     srv.URL,
			Timeout: 20 * time.Millisecond,
		}, srv.Client())

		_, err := host.Upload(context.Background(), sampleResume())
		require.Error(t, err)
	})
}

func testMessage() careers.Message {
	return careers.Message{
		Subject:  "Job Application: Senior React Developer - Jane Doe",
		Template: "box",
		Body:     "New Job Application\n\nPosition: Senior React Developer\n",
		Fields: map[string]string{
			"first_name": "Jane",
			"last_name":  "Doe",
			"email":      "jane@x.com",
		},
	}
}

func TestFormRelay_Send(t *testing.T) {
	t.Run("multipart format posts browser-style fields", func(t *testing.T) {
		var received map[string]string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			received = make(map[string]string)
			for key, values := range r.MultipartForm.Value {
				received[key] = values[0]
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		relay := NewFormRelay(config.RelayConfig{Name: "hr-inbox", URL: srv.URL, Format: "multipart"}, srv.Client())
		err := relay.Send(context.Background(), testMessage())

		require.NoError(t, err)
		assert.Equal(t, "Jane", received["first_name"])
		assert.Equal(t, "Job Application: Senior React Developer - Jane Doe", received["_subject"])
		assert.Equal(t, "false", received["_captcha"])
		assert.Equal(t, "box", received["_template"])
		assert.Contains(t, received["message"], "Senior React Developer")
	})

	t.Run("json format requires a truthy success field", func(t *testing.T) {
		tests := []struct {
			name    string
			status  int
			body    string
			wantErr bool
		}{
			{"success as string", http.StatusOK, `{"success":"true","message":"sent"}`, false},
			{"success as bool", http.StatusOK, `{"success":true}`, false},
			{"success false", http.StatusOK, `{"success":"false"}`, true},
			{"missing success field", http.StatusOK, `{}`, true},
			{"http error", http.StatusBadGateway, `{"success":"true"}`, true},
			{"malformed body", http.StatusOK, `not json`, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					w.WriteHeader(tt.status)
					w.Write([]byte(tt.body))
				}))
				defer srv.Close()

				relay := NewFormRelay(config.RelayConfig{Name: "careers-inbox", URL: srv.URL, Format: "json"}, srv.Client())
				err := relay.Send(context.Background(), testMessage())

				if tt.wantErr {
					require.Error(t, err)
				} else {
					require.NoError(t, err)
				}
			})
		}
	})

	t.Run("cc is forwarded when set", func(t *testing.T) {
		var received map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = make(map[string]any)
			require.NoError(t, jsonDecode(r, &received))
			w.Write([]byte(`{"success":"true"}`))
		}))
		defer srv.Close()

		msg := testMessage()
		msg.CC = "sales@orangeot.com"

		relay := NewFormRelay(config.RelayConfig{Name: "contact-inbox", URL: srv.URL, Format: "json"}, srv.Client())
		require.NoError(t, relay.Send(context.Background(), msg))

		assert.Equal(t, "sales@orangeot.com", received["_cc"])
	})
}

func jsonDecode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func TestBuildUploadProviders(t *testing.T) {
	chain := BuildUploadProviders([]config.ProviderConfig{
		{Name: "fileio", URL: "https://file.io", Response: "json"},
		{Name: "nullpointer", URL: "https://0x0.st", Response: "text"},
		{Name: "inline"},
	}, nil)

	require.Len(t, chain, 3)
	assert.Equal(t, "fileio", chain[0].Name())
	assert.Equal(t, "nullpointer", chain[1].Name())
	assert.IsType(t, &Inline{}, chain[2])
}

func TestBuildRelays(t *testing.T) {
	relays := BuildRelays([]config.RelayConfig{
		{Name: "careers-inbox", URL: "https://formsubmit.co/ajax/careers@orangeot.com", Format: "json"},
		{Name: "hr-inbox", URL: "https://formsubmit.co/hr@orangeot.com", Format: "multipart"},
	}, nil)

	require.Len(t, relays, 2)
	assert.Equal(t, "careers-inbox", relays[0].Name())
	assert.Equal(t, "hr-inbox", relays[1].Name())
}
