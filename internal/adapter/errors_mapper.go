// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-share-inbox/models"
	"github.com/go-resty/resty/v2"
)

const cloudStatusFailure = "failure"

func mapHTTPError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))

	if cloudErr := parseCloudError(resp.StatusCode(), body); cloudErr != nil {
		return cloudErr
	}

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// parseCloudError returns a *CloudError when body is a cloud failure status
// with a non-empty description, nil otherwise.
func parseCloudError(statusCode int, body string) *CloudError {
	if body == "" || body[0] != '{' {
		return nil
	}

	var st models.CloudStatus
	if err := json.Unmarshal([]byte(body), &st); err != nil {
		return nil
	}
	if !strings.EqualFold(st.Status, cloudStatusFailure) || strings.TrimSpace(st.Description) == "" {
		return nil
	}

	return &CloudError{
		StatusCode:  statusCode,
		Code:        st.ErrorCode,
		Description: strings.TrimSpace(st.Description),
	}
}
