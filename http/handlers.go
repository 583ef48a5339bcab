package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/sagarc03/quickserve"
	"github.com/sagarc03/quickserve/route"
)

var errTrailingData = errors.New("unexpected data after JSON value")

// Request is what a HandlerFunc receives: the inbound request plus the path
// parameters bound by the route table.
type Request struct {
	*http.Request
	Params route.Params
}

// Result is a successful handler outcome. A zero Status means 200.
type Result struct {
	Status int
	Body   any
}

// OK returns a 200 Result.
func OK(body any) Result {
	return Result{Status: http.StatusOK, Body: body}
}

// Created returns a 201 Result.
func Created(body any) Result {
	return Result{Status: http.StatusCreated, Body: body}
}

// HandlerFunc handles one matched request. It returns either a Result or an
// error; it never writes the response itself.
type HandlerFunc func(r *Request) (Result, error)

// HandleHealth always reports {"status":"ok"}.
func HandleHealth(_ *Request) (Result, error) {
	return OK(quickserve.Health{Status: quickserve.StatusOK}), nil
}

// HandleCreateItem validates the payload and echoes it back with 201.
// Nothing is stored and no id is generated.
func HandleCreateItem(r *Request) (Result, error) {
	payload, err := decodePayload(r.Request)
	if err != nil {
		return Result{}, err
	}

	if err := payload.Validate(); err != nil {
		return Result{}, err
	}

	return Created(payload), nil
}

// HandleGetItem parses the id path parameter and returns a synthesized item.
func HandleGetItem(r *Request) (Result, error) {
	id, err := quickserve.ParseID(r.Params.Get("id"))
	if err != nil {
		return Result{}, err
	}

	return OK(quickserve.NewItem(id)), nil
}

// decodePayload reads a JSON or urlencoded body. Other content types are not
// read, and an empty JSON body decodes to a zero Payload, so that validation
// reports the missing name. A JSON body must hold exactly one value.
func decodePayload(r *http.Request) (quickserve.Payload, error) {
	var payload quickserve.Payload

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return payload, bodyError(err)
		}
		if err := decodeForm(r.PostForm, &payload); err != nil {
			return payload, bodyError(err)
		}
		return payload, nil
	case !isJSON(mediaType):
		return payload, nil
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return quickserve.Payload{}, nil
		}
		return quickserve.Payload{}, bodyError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return quickserve.Payload{}, bodyError(err)
	}

	return payload, nil
}

// isJSON reports whether mediaType is application/json or a +json type.
func isJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func decodeForm(form url.Values, payload *quickserve.Payload) error {
	input := make(map[string]any, len(form))
	for key := range form {
		input[key] = form.Get(key)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           payload,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return quickserve.WrapError(http.StatusRequestEntityTooLarge, quickserve.MsgPayloadTooLarge, err)
	}
	return quickserve.WrapError(http.StatusBadRequest, quickserve.MsgInvalidBody, err)
}
