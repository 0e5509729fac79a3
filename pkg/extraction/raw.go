package extraction

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrCompletionFailed marks transport, auth and rate-limit failures of the completion call.
	// These are worth retrying; malformed output is not.
	ErrCompletionFailed = errors.New("completion failed")
	// ErrMalformedOutput marks completions whose content cannot be used as a RawExtractionResult.
	ErrMalformedOutput = errors.New("malformed model output")
)

// MalformedOutputError carries the model text that failed to parse, for diagnostics.
type MalformedOutputError struct {
	Raw    string
	Reason string
}

func (e *MalformedOutputError) Error() string {
	return "malformed model output: " + e.Reason
}

func (e *MalformedOutputError) Is(target error) bool { return target == ErrMalformedOutput }

// Malformed builds a MalformedOutputError for raw.
func Malformed(raw Raw, format string, args ...any) error {
	return &MalformedOutputError{Raw: raw.String(), Reason: fmt.Sprintf(format, args...)}
}

// Raw is the untrusted JSON object returned by the model. Keys and value types vary between
// completions, so every access goes through Field with a list of accepted key spellings.
type Raw struct {
	data []byte
}

// NewRaw wraps already-validated JSON.
func NewRaw(data []byte) Raw { return Raw{data: data} }

func (r Raw) Bytes() []byte  { return r.data }
func (r Raw) String() string { return string(r.data) }

// Root returns the whole document for Field lookups.
func (r Raw) Root() gjson.Result { return gjson.ParseBytes(r.data) }

// Field returns the first of keys present in obj. The zero Result (Exists() == false) means absent.
func Field(obj gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := obj.Get(k); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}
