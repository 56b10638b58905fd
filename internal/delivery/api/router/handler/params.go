package handler

import (
	"net/url"
	"strconv"
	"strings"

	deliverycontext "bookshop/internal/delivery/context"
	domainerrors "bookshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// callerID returns the id stored by the auth middleware.
func callerID(c echo.Context) (int64, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.NewValidationError(map[string]string{name: "must be a positive integer"})
	}

	return id, nil
}

// valueReader reads optional typed values out of query or form parameters,
// collecting a message per malformed field.
type valueReader struct {
	values url.Values
	errs   map[string]string
}

func newValueReader(values url.Values) *valueReader {
	return &valueReader{values: values, errs: map[string]string{}}
}

func (r *valueReader) has(name string) bool {
	_, ok := r.values[name]

	return ok
}

// String returns nil when the field is absent.
func (r *valueReader) String(name string) *string {
	if !r.has(name) {
		return nil
	}
	v := r.values.Get(name)

	return &v
}

// Int64 returns nil when the field is absent or blank.
func (r *valueReader) Int64(name string) *int64 {
	raw := strings.TrimSpace(r.values.Get(name))
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.errs[name] = "must be an integer"

		return nil
	}

	return &v
}

func (r *valueReader) Int(name string) *int {
	v := r.Int64(name)
	if v == nil {
		return nil
	}
	n := int(*v)

	return &n
}

// IDs reads a repeated id field. Absent yields nil; a single empty value
// yields an empty, non-nil slice.
func (r *valueReader) IDs(name string) []int64 {
	raw, ok := r.values[name]
	if !ok {
		return nil
	}

	ids := make([]int64, 0, len(raw))
	for _, value := range raw {
		for part := range strings.SplitSeq(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				r.errs[name] = "must be a list of positive integers"

				return nil
			}
			ids = append(ids, id)
		}
	}

	return ids
}

// Err returns the collected parse errors as a validation error.
func (r *valueReader) Err() error {
	if len(r.errs) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(r.errs)
}
