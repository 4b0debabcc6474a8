package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

// idParam parses the {id} path segment. Non-positive ids are rejected.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryParser reads numeric query parameters. Absent parameters keep their
// zero value; present but malformed ones are collected as validation errors.
type queryParser struct {
	r    *http.Request
	errs validator.ValidationErrors
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

func (p *queryParser) raw(key string) string {
	return strings.TrimSpace(p.r.URL.Query().Get(key))
}

// Int parses a non-negative integer.
func (p *queryParser) Int(key string) int {
	v := p.raw(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		p.errs = append(p.errs, validator.ValidationError{Field: key, Message: key + " must be a non-negative integer"})
		return 0
	}
	return n
}

// ID parses a positive identifier.
func (p *queryParser) ID(key string) *int64 {
	v := p.raw(key)
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		p.errs = append(p.errs, validator.ValidationError{Field: key, Message: key + " must be a positive integer"})
		return nil
	}
	return &id
}

func (p *queryParser) Err() error {
	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
