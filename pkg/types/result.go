package types

import "encoding/json"

// Result is the envelope every registry call returns: either a value or an
// error code, never both.
type Result struct {
	Value any
	Error *int
}

func Ok(v any) Result {
	return Result{Value: v}
}

// Fail converts err into an error envelope. Errors outside the registry
// taxonomy carry the fallback code.
func Fail(err error, fallback int) Result {
	code, ok := ErrorCode(err)
	if !ok {
		code = fallback
	}
	return Result{Error: &code}
}

func (r Result) OK() bool {
	return r.Error == nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(struct {
			Error int `json:"error"`
		}{*r.Error})
	}

	return json.Marshal(struct {
		Value any `json:"value"`
	}{r.Value})
}
