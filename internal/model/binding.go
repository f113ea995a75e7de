package model

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// The validation layer is a pure function of the request body: it either
// fills dst with a decoded, type-checked value or reports a FieldErrors map
// suitable for the "errors" envelope. Decode-level failures (absent body,
// malformed JSON) surface the decoder's own message under the sentinel key
// "error"; missing required fields surface one entry per field, keyed by the
// capitalized field name.

var validate = validator.New()

// DecodeBody decodes r into dst and validates it. A nil return means dst is
// populated and structurally valid.
func DecodeBody(r io.Reader, dst interface{}) FieldErrors {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return FieldErrors{"error": err.Error()}
	}
	if err := validate.Struct(dst); err != nil {
		return bindErrors(err)
	}
	return nil
}

// bindErrors flattens a validator error into the wire error map. Messages
// keep validator's own wording, trimmed of the "Key: ... Error:" prefix, so
// clients can match on them.
func bindErrors(err error) FieldErrors {
	fieldErrs := make(FieldErrors)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrs["error"] = err.Error()
		return fieldErrs
	}

	const sep = "Error:"
	for _, verr := range verrs {
		msg := verr.Error()
		if idx := strings.Index(msg, sep); idx != -1 {
			msg = msg[idx+len(sep):]
		}
		fieldErrs[verr.Field()] = msg
	}
	return fieldErrs
}
