package ingest

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"placesync/internal/models"
)

var validate = newValidator()

// newValidator reports failing fields under their json names so MappingError
// speaks the remote record's vocabulary.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// MapAccount converts a raw remote record into a validated Account. It fails
// on the first invalid field and never returns a partial entity.
func MapAccount(raw models.RawRecord) (models.Account, error) {
	id, err := intField(raw, "id")
	if err != nil {
		return models.Account{}, err
	}
	name, err := stringField(raw, "name")
	if err != nil {
		return models.Account{}, err
	}
	email, err := stringField(raw, "email")
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{ID: id, Name: name, Email: email}
	if err := checkEntity(account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// MapPost converts a raw remote record into a validated Post. The owning
// account id comes from the record's userId field (accountId is accepted for
// records read back from the store).
func MapPost(raw models.RawRecord) (models.Post, error) {
	id, err := intField(raw, "id")
	if err != nil {
		return models.Post{}, err
	}
	ownerKey := "userId"
	if _, ok := raw[ownerKey]; !ok {
		ownerKey = "accountId"
	}
	accountID, err := intField(raw, ownerKey)
	if err != nil {
		return models.Post{}, err
	}
	title, err := stringField(raw, "title")
	if err != nil {
		return models.Post{}, err
	}
	// body may be the empty string, but the key must be present
	body, err := stringField(raw, "body")
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{ID: id, AccountID: accountID, Title: title, Body: body}
	if err := checkEntity(post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// checkEntity runs the struct-tag validation and converts the first failing
// field into a MappingError.
func checkEntity(entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &MappingError{Field: "record", Reason: err.Error()}
	}
	fe := verrs[0]
	return &MappingError{Field: fe.Field(), Reason: reasonFor(fe)}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required value is missing or empty"
	case "contains":
		return "must contain " + strconv.Quote(fe.Param())
	default:
		return "fails " + fe.Tag() + " constraint"
	}
}

func intField(raw models.RawRecord, key string) (int64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, &MappingError{Field: key, Reason: "missing"}
	}
	switch n := v.(type) {
	case float64:
		// encoding/json decodes every number into float64; reject anything
		// outside int64 range before converting
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, &MappingError{Field: key, Reason: "not an integer"}
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, &MappingError{Field: key, Reason: "not integer-coercible"}
		}
		return i, nil
	default:
		return 0, &MappingError{Field: key, Reason: "not integer-coercible"}
	}
}

func stringField(raw models.RawRecord, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", &MappingError{Field: key, Reason: "missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MappingError{Field: key, Reason: "not a string"}
	}
	return s, nil
}
