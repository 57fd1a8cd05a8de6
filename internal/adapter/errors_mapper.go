package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-sketch-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into one of the package's sentinel
// errors, preserving the server's error message as wrapped context. A 409
// whose body carries currentUpdatedAt becomes a *ConflictError so callers can
// surface the authoritative timestamp.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusGone:
		return fmt.Errorf("%w: %s", ErrGone, message)
	case http.StatusConflict:
		if apiErr, ok := decodeAPIError(resp); ok && apiErr.CurrentUpdatedAt != nil {
			return &ConflictError{CurrentUpdatedAt: *apiErr.CurrentUpdatedAt}
		}
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// errorMessage extracts the server's error description: the structured
// APIError body when present, the raw body otherwise, the status text as a
// last resort.
func errorMessage(resp *resty.Response) string {
	if apiErr, ok := decodeAPIError(resp); ok && apiErr.Error != "" {
		return apiErr.Error
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}

func decodeAPIError(resp *resty.Response) (models.APIError, bool) {
	var apiErr models.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err != nil {
		return models.APIError{}, false
	}
	return apiErr, true
}
