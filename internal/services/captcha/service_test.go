package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CaptchaServiceTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	calls   atomic.Int32
	service Service
	ctx     context.Context
}

func (s *CaptchaServiceTestSuite) SetupTest() {
	s.calls.Store(0)
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		s.handler(w, r)
	}))

	svc, err := New(&Config{
		SiteKey:    "site-key",
		SecretKey:  "secret-key",
		VerifyURL:  s.server.URL,
		HTTPClient: s.server.Client(),
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func (s *CaptchaServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func TestCaptchaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CaptchaServiceTestSuite))
}

func (s *CaptchaServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{SiteKey: "site"})
	s.ErrorIs(err, ErrMissingSecret)
}

func (s *CaptchaServiceTestSuite) TestVerifySuccess() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(r.ParseForm())
		s.Equal("secret-key", r.PostForm.Get("secret"))
		s.Equal("token-1", r.PostForm.Get("response"))
		s.Equal("site-key", r.PostForm.Get("sitekey"))
		s.Equal("203.0.113.9", r.PostForm.Get("remoteip"))
		_, _ = w.Write([]byte(`{"success":true,"hostname":"gate.example.com"}`))
	}

	out, err := s.service.Verify(s.ctx, &VerifyInput{Token: "token-1", RemoteIP: "203.0.113.9"})
	s.Require().NoError(err)
	s.True(out.Success)
}

func (s *CaptchaServiceTestSuite) TestVerifyRejected() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}

	out, err := s.service.Verify(s.ctx, &VerifyInput{Token: "bad"})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal([]string{"invalid-input-response"}, out.ErrorCodes)
}

func (s *CaptchaServiceTestSuite) TestMissingTokenFailsClosedWithoutCall() {
	out, err := s.service.Verify(s.ctx, &VerifyInput{Token: "  "})
	s.Require().NoError(err)
	s.False(out.Success)

	out, err = s.service.Verify(s.ctx, nil)
	s.Require().NoError(err)
	s.False(out.Success)

	s.Equal(int32(0), s.calls.Load())
}

func (s *CaptchaServiceTestSuite) TestVerifierErrorStatus() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}

	_, err := s.service.Verify(s.ctx, &VerifyInput{Token: "token-1"})
	s.ErrorIs(err, ErrUnavailable)
}

func (s *CaptchaServiceTestSuite) TestVerifierMalformedBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}

	_, err := s.service.Verify(s.ctx, &VerifyInput{Token: "token-1"})
	s.ErrorIs(err, ErrUnavailable)
}

func (s *CaptchaServiceTestSuite) TestVerifierUnreachable() {
	s.server.Close()

	_, err := s.service.Verify(s.ctx, &VerifyInput{Token: "token-1"})
	s.ErrorIs(err, ErrUnavailable)
}
