package httpvalidate_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UBF21/Vali-Validation/pkg/httpvalidate"
	"github.com/UBF21/Vali-Validation/pkg/validator"
)

type createUser struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Age   int    `json:"age" yaml:"age"`
}

func userValidator() *validator.Validator[createUser] {
	v := validator.New[createUser]()
	validator.RuleFor(v, "Name", func(u createUser) string { return u.Name }).
		NotEmpty().
		MinimumLength(3)
	validator.RuleFor(v, "Email", func(u createUser) string { return u.Email }).
		NotEmpty().
		Email()
	validator.RuleFor(v, "Age", func(u createUser) int { return u.Age }).
		NotZero().
		Positive()
	return v
}

var errDuplicate = errors.New("duplicate key")

func newRouter(v *validator.Validator[createUser]) http.Handler {
	r := chi.NewRouter()
	r.Post("/users", httpvalidate.Handle(v, func(_ context.Context, req createUser) (any, error) {
		switch req.Email {
		case "taken@example.com":
			res := validator.NewResult()
			res.AddError("Email", "The email is already registered.")
			return nil, fmt.Errorf("create user: %w", res.Err())
		case "crash@example.com":
			return nil, errDuplicate
		}
		return map[string]string{"name": req.Name}, nil
	}, httpvalidate.WithSuccessStatus(http.StatusCreated), httpvalidate.WithMaxBodyBytes(256)))
	return r
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, contentType, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestHandle_ValidationFailure(t *testing.T) {
	t.Parallel()

	h := newRouter(userValidator())
	rec, env := do(t, h, "application/json", `{"name":"","email":"correo-invalido","age":0}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
	assert.Equal(t, "The request contains invalid fields.", env.Error.Message)
	assert.Equal(t,
		`{"Name":["The Name field cannot be empty.","The Name field must be at least 3 characters long."],`+
			`"Email":["The Email field must be a valid email address."],`+
			`"Age":["The Age field cannot be zero.","The Age field must be a positive number."]}`,
		string(env.Error.Details))
}

func TestHandle_Success(t *testing.T) {
	t.Parallel()

	h := newRouter(userValidator())

	t.Run("json", func(t *testing.T) {
		rec, env := do(t, h, "application/json; charset=utf-8", `{"name":"Ana","email":"ana@example.com","age":30}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Nil(t, env.Error)
		assert.JSONEq(t, `{"name":"Ana"}`, string(env.Data))
	})

	t.Run("yaml", func(t *testing.T) {
		body := "name: Luis\nemail: luis@example.com\nage: 41\n"
		rec, env := do(t, h, "application/yaml", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"name":"Luis"}`, string(env.Data))
	})

	t.Run("yaml validation failure", func(t *testing.T) {
		rec, env := do(t, h, "application/x-yaml", "name: Jo\nemail: jo@example.com\nage: -1\n")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t,
			`{"Name":["The Name field must be at least 3 characters long."],"Age":["The Age field must be a positive number."]}`,
			string(env.Error.Details))
	})
}

func TestHandle_HandlerErrors(t *testing.T) {
	t.Parallel()

	h := newRouter(userValidator())

	t.Run("returned result renders as validation failure", func(t *testing.T) {
		rec, env := do(t, h, "application/json", `{"name":"Ana","email":"taken@example.com","age":30}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"Email":["The email is already registered."]}`, string(env.Error.Details))
	})

	t.Run("other errors are internal", func(t *testing.T) {
		rec, env := do(t, h, "application/json", `{"name":"Ana","email":"crash@example.com","age":30}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal_error", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), errDuplicate.Error())
	})
}

func TestHandle_RejectedBodies(t *testing.T) {
	t.Parallel()

	h := newRouter(userValidator())

	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		code        string
	}{
		{name: "malformed json", contentType: "application/json", body: `{"name":`, status: http.StatusBadRequest, code: "bad_request"},
		{name: "unknown field", contentType: "application/json", body: `{"nickname":"x"}`, status: http.StatusBadRequest, code: "bad_request"},
		{name: "trailing data", contentType: "application/json", body: `{"name":"Ana"} {}`, status: http.StatusBadRequest, code: "bad_request"},
		{name: "empty body", contentType: "application/json", body: "", status: http.StatusBadRequest, code: "bad_request"},
		{name: "wrong type", contentType: "application/json", body: `{"age":"old"}`, status: http.StatusBadRequest, code: "bad_request"},
		{name: "malformed yaml", contentType: "application/yaml", body: "name: [", status: http.StatusBadRequest, code: "bad_request"},
		{name: "missing content type", contentType: "", body: `{}`, status: http.StatusUnsupportedMediaType, code: "unsupported_media_type"},
		{name: "unsupported content type", contentType: "text/plain", body: `{}`, status: http.StatusUnsupportedMediaType, code: "unsupported_media_type"},
		{name: "too large", contentType: "application/json", body: `{"name":"` + strings.Repeat("a", 300) + `"}`, status: http.StatusRequestEntityTooLarge, code: "request_too_large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, tt.contentType, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Empty(t, env.Error.Details)
		})
	}
}

func TestHandle_EvaluationFault(t *testing.T) {
	t.Parallel()

	v := validator.New[createUser]()
	validator.RuleFor(v, "Email", func(u createUser) string { return u.Email }).
		MustAsync(func(context.Context, string) (bool, error) { return false, errors.New("store down") }, "")

	called := false
	h := httpvalidate.Handle(v, func(context.Context, createUser) (any, error) {
		called = true
		return nil, nil
	})

	rec, env := do(t, h, "application/json", `{"email":"a@b.co"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", env.Error.Code)
	assert.False(t, called)
}

func TestHandle_CanceledRequest(t *testing.T) {
	t.Parallel()

	v := userValidator()
	h := httpvalidate.Handle(v, func(context.Context, createUser) (any, error) { return nil, nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Ana"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_canceled"`)
}
