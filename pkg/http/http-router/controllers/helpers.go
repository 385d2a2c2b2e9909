package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/ir-lab/pkg"
	"go.uber.org/zap"
)

const (
	MAX_BODY_BYTES = 1 << 20
)

type envelope map[string]any

// baseAPI carries what every controller needs to decode, validate and answer.
type baseAPI struct {
	log      *zap.Logger
	validate *validator.Validate
	trans    ut.Translator
}

func newBaseAPI(log *zap.Logger) baseAPI {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return baseAPI{log: log, validate: validate, trans: trans}
}

// writeJSON marshals data structure to encoded JSON response.
func (api *baseAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

// readJSON decodes a single JSON object from the request body into dst.
func (api *baseAPI) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

// decodeAndValidate reads the body into request and runs the struct validations,
// answering 400 itself when either fails.
func (api *baseAPI) decodeAndValidate(w http.ResponseWriter, r *http.Request, request any) bool {
	if err := api.readJSON(w, r, request); err != nil {
		api.BadRequestResponse(w, r, err)
		return false
	}
	if err := api.validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return false
	}
	return true
}

func (api *baseAPI) validateStruct(request any) error {
	err := api.validate.Struct(request)
	if err == nil {
		return nil
	}
	vv := translateError(err, api.trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

// errorResponse model info
//
//	@Description	error body returned by every failing endpoint.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (api *baseAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := errorResponse{}
	resp.Error.Code = strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
	resp.Error.Message = message

	if err := api.writeJSON(w, status, envelope{"error": resp.Error}, nil); err != nil {
		api.log.Error("failed to write error response", zap.String("path", r.URL.Path), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *baseAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("request failed",
		zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, pkg.MessageInternalServerError)
}

func (api *baseAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *baseAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (api *baseAPI) ConflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusConflict, err.Error())
}

// getStatusCode maps the code carried by err to an HTTP status.
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch pkg.ErrorCode(err) {
	case pkg.ErrBadParamInput:
		return http.StatusBadRequest
	case pkg.ErrNotFound:
		return http.StatusNotFound
	case pkg.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// handleError answers with the status matching err.
func (api *baseAPI) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch getStatusCode(err) {
	case http.StatusBadRequest:
		api.BadRequestResponse(w, r, err)
	case http.StatusNotFound:
		api.NotFoundResponse(w, r, err)
	case http.StatusConflict:
		api.ConflictResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
