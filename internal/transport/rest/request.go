package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON object into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

// principal returns the authenticated caller or the zero Principal, which
// every service rejects with ErrUnauthorized.
func principal(r *http.Request) domain.Principal {
	p, _ := ctxutil.PrincipalFromCtx(r.Context())
	return p
}

// params parses request parameters, collecting every failure so a single
// 400 lists them all.
type params struct {
	errs []domain.FieldError
}

func (p *params) fail(field, msg string) {
	p.errs = append(p.errs, domain.FieldError{Field: field, Message: msg})
}

func (p *params) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}

// uuid parses a required id.
func (p *params) uuid(field, raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		p.fail(field, "invalid id")
		return uuid.Nil
	}
	return id
}

// optUUID parses an optional id; only empty means absent. The all-zero
// UUID is passed on so ownership checks reject it.
func (p *params) optUUID(field, raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		p.fail(field, "invalid id")
		return nil
	}
	return &id
}

// date parses a required YYYY-MM-DD day.
func (p *params) date(field, raw string) time.Time {
	if raw == "" {
		p.fail(field, "required")
		return time.Time{}
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		p.fail(field, fmt.Sprintf("must be %s", domain.DateLayout))
		return time.Time{}
	}
	return d
}

// optDate parses an optional YYYY-MM-DD day.
func (p *params) optDate(field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	d := p.date(field, raw)
	if d.IsZero() {
		return nil
	}
	return &d
}

// optInt parses an optional non-negative integer.
func (p *params) optInt(field, raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		p.fail(field, "must be a non-negative integer")
		return 0
	}
	return n
}

// first returns the first non-empty value among keys.
func first(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// dateRange reads from/to in either the fromDate/toDate or from/to spelling.
func (p *params) dateRange(q url.Values) (*time.Time, *time.Time) {
	from := p.optDate("fromDate", first(q, "fromDate", "from"))
	to := p.optDate("toDate", first(q, "toDate", "to"))
	return from, to
}
