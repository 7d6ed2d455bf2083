package utils

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PostJSON envia um payload JSON e retorna o corpo da resposta
func PostJSON(url string, body []byte, headers map[string]string, timeout time.Duration) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	return data, nil
}
