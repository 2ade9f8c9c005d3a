package market

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingFields means a required editor field was left empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidPrice means the price text is not a whole number >= 0.
	ErrInvalidPrice = errors.New("invalid price")
)

// FormFields is the raw text held by the editor form. Price stays text until
// the form is submitted.
type FormFields struct {
	Title       string `validate:"required"`
	Price       string `validate:"required"`
	Code        string `validate:"required"`
	Description string `validate:"required"`
	Language    string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// BlankFields returns the fields of an empty create form.
func BlankFields() FormFields {
	return FormFields{Language: DefaultLanguage}
}

// FieldsFor returns form fields pre-filled from l for editing.
func FieldsFor(l Listing) FormFields {
	lang := l.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	return FormFields{
		Title:       l.Title,
		Price:       strconv.Itoa(l.Price),
		Code:        l.Code,
		Description: l.Description,
		Language:    lang,
	}
}

// ParseDraft validates f and converts it to a Draft.
func ParseDraft(f FormFields) (Draft, error) {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return Draft{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missingNames(verrs), ", "))
		}
		return Draft{}, fmt.Errorf("validate form: %w", err)
	}

	price, err := strconv.Atoi(strings.TrimSpace(f.Price))
	if err != nil || price < 0 {
		return Draft{}, fmt.Errorf("%w: %q", ErrInvalidPrice, f.Price)
	}

	lang := f.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	return Draft{
		Title:       f.Title,
		Price:       price,
		Code:        f.Code,
		Description: f.Description,
		Language:    lang,
	}, nil
}

// FormMessage returns the dialog text for an error from ParseDraft.
func FormMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return MissingFields
	case errors.Is(err, ErrInvalidPrice):
		return InvalidPrice
	default:
		return err.Error()
	}
}

func missingNames(verrs validator.ValidationErrors) []string {
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, strings.ToLower(fe.Field()))
	}
	return names
}
