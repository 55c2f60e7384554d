package benchmark

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doodlesbykumbi/cookie-session/pkg/config"
	"github.com/doodlesbykumbi/cookie-session/pkg/key"
	"github.com/doodlesbykumbi/cookie-session/pkg/seal"
	"github.com/doodlesbykumbi/cookie-session/pkg/server"
	"github.com/doodlesbykumbi/cookie-session/pkg/server/endpoints"
	"github.com/doodlesbykumbi/cookie-session/pkg/session"
)

const dataKey = "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="

func newManager(b *testing.B, alg seal.Algorithm) *session.Manager {
	b.Helper()

	k, err := key.Load(dataKey)
	if err != nil {
		b.Fatal(err)
	}
	c, err := seal.New(alg, k)
	if err != nil {
		b.Fatal(err)
	}
	m, err := session.NewManager(c)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkIssueValidate(b *testing.B) {
	for _, alg := range seal.Algorithms() {
		m := newManager(b, alg)

		b.Run(string(alg)+": Issue", func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _, _ = m.Issue("user-42")
			}
		})

		b.Run(string(alg)+": Validate", func(b *testing.B) {
			_, token, err := m.Issue("user-42")
			if err != nil {
				b.Fatal(err)
			}
			now := time.Now()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = m.ValidateString(token, now)
			}
		})
	}
}

func BenchmarkWhoamiHandlerParallel(b *testing.B) {
	m := newManager(b, seal.AES256GCM)
	s := server.NewServer(config.Default(), m, server.WithAccessLog(io.Discard))
	endpoints.RegisterAll(s)
	handler := s.Handler()

	_, token, err := m.Issue("user-42")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			r := httptest.NewRequest(http.MethodGet, "/session", nil)
			r.AddCookie(&http.Cookie{Name: "_session", Value: token})
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			if w.Code != http.StatusOK {
				b.Fatalf("unexpected status %d", w.Code)
			}
		}
	})
}
